package shop

import (
	"pickleball-api/core/database"
	"pickleball-api/core/middleware"
	"pickleball-api/core/storage"
	"pickleball-api/modules/shop/controller"
	"pickleball-api/modules/shop/repository"
	"pickleball-api/modules/shop/router"
	"pickleball-api/modules/shop/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, st storage.IStorage) {
	repo := repository.NewShopRepository(db)
	svc := service.NewShopService(repo, st)
	ctrl := controller.NewShopController(svc)
	rtr := router.NewShopRouter(ctrl)

	rtr.Setup(e, mw)
}
