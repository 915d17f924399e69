package booking

import (
	"pickleball-api/core/cache"
	"pickleball-api/core/database"
	"pickleball-api/core/middleware"
	"pickleball-api/core/queue"
	"pickleball-api/modules/booking/controller"
	"pickleball-api/modules/booking/repository"
	"pickleball-api/modules/booking/router"
	"pickleball-api/modules/booking/service"
	facilityrepo "pickleball-api/modules/facility/repository"
	userrepo "pickleball-api/modules/user/repository"

	"github.com/labstack/echo/v4"
)

// Init wires the booking module. The engine reads courts through the
// facility repository and performs the single-field profile append through
// the user repository.
func Init(
	e *echo.Echo,
	db database.IDatabase,
	mw *middleware.Middleware,
	courts *facilityrepo.FacilityRepository,
	users *userrepo.UserRepository,
	c cache.ICache,
	q queue.IQueue,
) {
	repo := repository.NewBookingRepository(db)
	svc := service.NewBookingService(repo, courts, users, c, q)
	ctrl := controller.NewBookingController(svc)
	rtr := router.NewBookingRouter(ctrl)

	rtr.Setup(e, mw)
}
