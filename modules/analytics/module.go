package analytics

import (
	"pickleball-api/core/database"
	"pickleball-api/core/middleware"
	"pickleball-api/modules/analytics/controller"
	"pickleball-api/modules/analytics/repository"
	"pickleball-api/modules/analytics/router"
	"pickleball-api/modules/analytics/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewAnalyticsRepository(db)
	svc := service.NewAnalyticsService(repo)
	ctrl := controller.NewAnalyticsController(svc)
	rtr := router.NewAnalyticsRouter(ctrl)

	rtr.Setup(e, mw)
}
