package controller

import (
	"pickleball-api/core/constants"
	"pickleball-api/core/controller"
	"pickleball-api/core/errors"
	"pickleball-api/core/utils"
	"pickleball-api/modules/tournament/dto"
	"pickleball-api/modules/tournament/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TournamentController struct {
	controller.BaseController
	TournamentService service.TournamentServiceInterface
}

func NewTournamentController(svc service.TournamentServiceInterface) *TournamentController {
	return &TournamentController{
		BaseController:    controller.NewBaseController(),
		TournamentService: svc,
	}
}

func (c *TournamentController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}
	return claims.UserID, nil
}

// List handles GET /tournaments
// @Summary List tournaments
// @Tags Tournament
// @Produce json
// @Success 200 {array} dto.TournamentResponse
// @Router /public/tournaments [get]
func (c *TournamentController) List(ctx echo.Context) error {
	result, appErr := c.TournamentService.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /tournaments/:id
// @Summary Get a tournament
// @Tags Tournament
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} dto.TournamentResponse
// @Failure 404 {object} errors.AppError
// @Router /public/tournaments/{id} [get]
func (c *TournamentController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid tournament ID")
	}

	result, appErr := c.TournamentService.Get(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Standings handles GET /tournaments/:id/standings
// @Summary Tournament standings
// @Description Teams ranked by wins, then point differential, then name
// @Tags Tournament
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} dto.StandingsResponse
// @Failure 404 {object} errors.AppError
// @Router /public/tournaments/{id}/standings [get]
func (c *TournamentController) Standings(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid tournament ID")
	}

	result, appErr := c.TournamentService.Standings(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Create handles POST /tournaments
// @Summary Create a tournament
// @Tags Tournament
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTournamentRequest true "Tournament details"
// @Success 200 {object} dto.TournamentResponse
// @Failure 400 {object} errors.AppError
// @Router /private/tournaments [post]
func (c *TournamentController) Create(ctx echo.Context) error {
	var req dto.CreateTournamentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TournamentService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Tournament created")
}

// UpdateStatus handles PUT /tournaments/:id/status
// @Summary Update tournament status
// @Description Moves a tournament along upcoming -> active -> completed
// @Tags Tournament
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.TournamentResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/tournaments/{id}/status [put]
func (c *TournamentController) UpdateStatus(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid tournament ID")
	}

	var req dto.UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TournamentService.UpdateStatus(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Tournament updated")
}

// Register handles POST /tournaments/:id/register
// @Summary Register for a tournament
// @Tags Tournament
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param request body dto.RegisterRequest true "Team details"
// @Success 200 {object} entity.Registration
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/tournaments/{id}/register [post]
func (c *TournamentController) Register(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid tournament ID")
	}

	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TournamentService.Register(ctx.Request().Context(), userID, id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Registered")
}

// RecordResult handles POST /tournaments/:id/results
// @Summary Record a match result
// @Tags Tournament
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID"
// @Param request body dto.RecordResultRequest true "Match result"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Router /private/tournaments/{id}/results [post]
func (c *TournamentController) RecordResult(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid tournament ID")
	}

	var req dto.RecordResultRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	appErr := c.TournamentService.RecordResult(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Result recorded")
}
