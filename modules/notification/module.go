package notification

import (
	"pickleball-api/core/database"
	"pickleball-api/core/middleware"
	"pickleball-api/modules/notification/controller"
	"pickleball-api/modules/notification/repository"
	"pickleball-api/modules/notification/router"
	"pickleball-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the notification module. The returned service is also consumed
// by the queue worker, which turns booking lifecycle tasks into rows here.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)

	rtr.Setup(e, mw)

	return svc
}
