package facility

import (
	"pickleball-api/core/config"
	"pickleball-api/core/database"
	"pickleball-api/core/middleware"
	"pickleball-api/core/storage"
	"pickleball-api/modules/facility/controller"
	"pickleball-api/modules/facility/repository"
	"pickleball-api/modules/facility/router"
	"pickleball-api/modules/facility/service"

	"github.com/labstack/echo/v4"
)

// Init wires the facility module and returns its repository for the booking
// engine, which reads courts through it
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, st storage.IStorage) *repository.FacilityRepository {
	repo := repository.NewFacilityRepository(db)
	svc := service.NewFacilityService(repo, st, config.Get().Booking)
	ctrl := controller.NewFacilityController(svc)
	rtr := router.NewFacilityRouter(ctrl)

	rtr.Setup(e, mw)
	return repo
}
