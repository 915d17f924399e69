package router

import (
	"pickleball-api/core/middleware"
	"pickleball-api/modules/tournament/controller"

	"github.com/labstack/echo/v4"
)

type TournamentRouter struct {
	Controller *controller.TournamentController
}

func NewTournamentRouter(ctrl *controller.TournamentController) *TournamentRouter {
	return &TournamentRouter{Controller: ctrl}
}

func (r *TournamentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	public := v1.Group("/public")
	public.GET("/tournaments", r.Controller.List)
	public.GET("/tournaments/:id", r.Controller.Get)
	public.GET("/tournaments/:id/standings", r.Controller.Standings)

	private := v1.Group("/private", mw.AuthMiddleware())
	tournaments := private.Group("/tournaments")
	tournaments.POST("", r.Controller.Create)
	tournaments.PUT("/:id/status", r.Controller.UpdateStatus)
	tournaments.POST("/:id/register", r.Controller.Register)
	tournaments.POST("/:id/results", r.Controller.RecordResult)
}
