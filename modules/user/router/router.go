package router

import (
	"pickleball-api/core/middleware"
	"pickleball-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	Controller *controller.UserController
}

func NewUserRouter(ctrl *controller.UserController) *UserRouter {
	return &UserRouter{Controller: ctrl}
}

func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	private := v1.Group("/private", mw.AuthMiddleware())

	users := private.Group("/users")
	users.GET("/me", r.Controller.GetMe)
	users.PUT("/me", r.Controller.UpdateMe)
}
