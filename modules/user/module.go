package user

import (
	"pickleball-api/core/database"
	"pickleball-api/core/middleware"
	"pickleball-api/modules/user/controller"
	"pickleball-api/modules/user/repository"
	"pickleball-api/modules/user/router"
	"pickleball-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init wires the user module and returns its repository so the booking
// commit can append to the profile's booking list
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *repository.UserRepository {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)
	rtr := router.NewUserRouter(ctrl)

	rtr.Setup(e, mw)
	return repo
}
