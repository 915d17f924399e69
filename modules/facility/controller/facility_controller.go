package controller

import (
	"pickleball-api/core/controller"
	"pickleball-api/core/errors"
	"pickleball-api/modules/facility/dto"
	"pickleball-api/modules/facility/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FacilityController handles catalog and court-management HTTP requests
type FacilityController struct {
	controller.BaseController
	FacilityService service.FacilityServiceInterface
}

func NewFacilityController(svc service.FacilityServiceInterface) *FacilityController {
	return &FacilityController{
		BaseController:  controller.NewBaseController(),
		FacilityService: svc,
	}
}

// GetCatalog handles GET /facilities
// @Summary List facilities and their courts
// @Description Returns the facility catalog grouped from court records. Pass demo=true to fall back to fixture data when the live catalog is empty.
// @Tags Facility
// @Produce json
// @Param demo query bool false "Use fixture data when the live catalog is empty"
// @Success 200 {object} dto.CatalogResponse
// @Router /public/facilities [get]
func (c *FacilityController) GetCatalog(ctx echo.Context) error {
	demo := ctx.QueryParam("demo") == "true"

	result, appErr := c.FacilityService.LoadCatalog(ctx.Request().Context(), demo)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetCourt handles GET /courts/:id
// @Summary Get one court
// @Tags Facility
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} dto.CourtResponse
// @Failure 404 {object} errors.AppError
// @Router /public/courts/{id} [get]
func (c *FacilityController) GetCourt(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid court ID")
	}

	result, appErr := c.FacilityService.GetCourt(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// CreateCourt handles POST /courts
// @Summary Create a court
// @Tags Facility
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SaveCourtRequest true "Court details"
// @Success 200 {object} dto.CourtResponse
// @Failure 400 {object} errors.AppError
// @Router /private/courts [post]
func (c *FacilityController) CreateCourt(ctx echo.Context) error {
	var req dto.SaveCourtRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.FacilityService.CreateCourt(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Court created successfully")
}

// UpdateCourt handles PUT /courts/:id
// @Summary Update a court
// @Tags Facility
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Param request body dto.SaveCourtRequest true "Court details"
// @Success 200 {object} dto.CourtResponse
// @Failure 404 {object} errors.AppError
// @Router /private/courts/{id} [put]
func (c *FacilityController) UpdateCourt(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid court ID")
	}

	var req dto.SaveCourtRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.FacilityService.UpdateCourt(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Court updated successfully")
}

// DeleteCourt handles DELETE /courts/:id
// @Summary Delete a court
// @Tags Facility
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 200 {object} map[string]string
// @Router /private/courts/{id} [delete]
func (c *FacilityController) DeleteCourt(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid court ID")
	}

	if appErr := c.FacilityService.DeleteCourt(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Court deleted successfully")
}
