package controller

import (
	"pickleball-api/core/controller"
	"pickleball-api/core/errors"
	"pickleball-api/modules/analytics/dto"
	"pickleball-api/modules/analytics/service"

	"github.com/labstack/echo/v4"
)

type AnalyticsController struct {
	controller.BaseController
	AnalyticsService service.AnalyticsServiceInterface
}

func NewAnalyticsController(svc service.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{
		BaseController:   controller.NewBaseController(),
		AnalyticsService: svc,
	}
}

// Summary handles GET /analytics/summary
// @Summary Facility activity summary
// @Description Booking totals, revenue, occupancy and per-slot demand over a date range (defaults to the last 30 days)
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param facility_id query string false "Limit to one facility"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} errors.AppError
// @Router /private/analytics/summary [get]
func (c *AnalyticsController) Summary(ctx echo.Context) error {
	var req dto.SummaryRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid query parameters")
	}

	result, appErr := c.AnalyticsService.Summary(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
