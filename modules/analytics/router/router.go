package router

import (
	"pickleball-api/core/middleware"
	"pickleball-api/modules/analytics/controller"

	"github.com/labstack/echo/v4"
)

type AnalyticsRouter struct {
	Controller *controller.AnalyticsController
}

func NewAnalyticsRouter(ctrl *controller.AnalyticsController) *AnalyticsRouter {
	return &AnalyticsRouter{Controller: ctrl}
}

func (r *AnalyticsRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	private := v1.Group("/private", mw.AuthMiddleware())
	private.GET("/analytics/summary", r.Controller.Summary)
}
