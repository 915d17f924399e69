package router

import (
	"pickleball-api/core/middleware"
	"pickleball-api/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	Controller *controller.NotificationController
}

func NewNotificationRouter(ctrl *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{Controller: ctrl}
}

func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	private := v1.Group("/private", mw.AuthMiddleware())
	notifications := private.Group("/notifications")
	notifications.GET("", r.Controller.GetMyNotifications)
	notifications.GET("/unread-count", r.Controller.CountUnread)
	notifications.PUT("/mark-read", r.Controller.MarkAsRead)
	notifications.PUT("/mark-all-read", r.Controller.MarkAllAsRead)
}
