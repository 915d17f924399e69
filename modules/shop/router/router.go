package router

import (
	"pickleball-api/core/middleware"
	"pickleball-api/modules/shop/controller"

	"github.com/labstack/echo/v4"
)

type ShopRouter struct {
	Controller *controller.ShopController
}

func NewShopRouter(ctrl *controller.ShopController) *ShopRouter {
	return &ShopRouter{Controller: ctrl}
}

func (r *ShopRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	public := v1.Group("/public")
	public.GET("/products", r.Controller.ListProducts)

	private := v1.Group("/private", mw.AuthMiddleware())
	private.POST("/products", r.Controller.CreateProduct)

	orders := private.Group("/orders")
	orders.GET("", r.Controller.GetMyOrders)
	orders.POST("", r.Controller.CreateOrder)
	orders.POST("/:id/pay", r.Controller.PayOrder)
	orders.POST("/:id/cancel", r.Controller.CancelOrder)
}
