package tournament

import (
	"pickleball-api/core/database"
	"pickleball-api/core/middleware"
	"pickleball-api/modules/tournament/controller"
	"pickleball-api/modules/tournament/repository"
	"pickleball-api/modules/tournament/router"
	"pickleball-api/modules/tournament/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewTournamentRepository(db)
	svc := service.NewTournamentService(repo)
	ctrl := controller.NewTournamentController(svc)
	rtr := router.NewTournamentRouter(ctrl)

	rtr.Setup(e, mw)
}
