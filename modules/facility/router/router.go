package router

import (
	"pickleball-api/core/middleware"
	"pickleball-api/modules/facility/controller"

	"github.com/labstack/echo/v4"
)

type FacilityRouter struct {
	Controller *controller.FacilityController
}

func NewFacilityRouter(ctrl *controller.FacilityController) *FacilityRouter {
	return &FacilityRouter{Controller: ctrl}
}

func (r *FacilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	public := v1.Group("/public")
	public.GET("/facilities", r.Controller.GetCatalog)
	public.GET("/courts/:id", r.Controller.GetCourt)

	private := v1.Group("/private", mw.AuthMiddleware())
	courts := private.Group("/courts")
	courts.POST("", r.Controller.CreateCourt)
	courts.PUT("/:id", r.Controller.UpdateCourt)
	courts.DELETE("/:id", r.Controller.DeleteCourt)
}
