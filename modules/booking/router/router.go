package router

import (
	"pickleball-api/core/middleware"
	"pickleball-api/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

type BookingRouter struct {
	Controller *controller.BookingController
}

func NewBookingRouter(ctrl *controller.BookingController) *BookingRouter {
	return &BookingRouter{Controller: ctrl}
}

func (r *BookingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	public := v1.Group("/public")
	public.GET("/availability", r.Controller.GetAvailability)

	private := v1.Group("/private", mw.AuthMiddleware())
	bookings := private.Group("/bookings")
	bookings.GET("", r.Controller.GetMyBookings)
	bookings.POST("", r.Controller.Create)
	bookings.POST("/quote", r.Controller.Quote)
	bookings.POST("/:id/cancel", r.Controller.Cancel)
}
