package controller

import (
	"pickleball-api/core/constants"
	"pickleball-api/core/controller"
	"pickleball-api/core/errors"
	"pickleball-api/core/utils"
	"pickleball-api/modules/booking/dto"
	"pickleball-api/modules/booking/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BookingController handles booking HTTP requests
type BookingController struct {
	controller.BaseController
	BookingService service.BookingServiceInterface
}

func NewBookingController(svc service.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: svc,
	}
}

// getUserIDFromContext extracts user ID from JWT context
func (c *BookingController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// GetAvailability handles GET /availability
// @Summary Court availability for a date
// @Description Returns the full slot catalog plus the occupied and free labels for one (court, date)
// @Tags Booking
// @Produce json
// @Param court_id query string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} errors.AppError
// @Router /public/availability [get]
func (c *BookingController) GetAvailability(ctx echo.Context) error {
	courtID, err := uuid.Parse(ctx.QueryParam("court_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid court_id")
	}
	date := ctx.QueryParam("date")

	result, appErr := c.BookingService.GetAvailability(ctx.Request().Context(), courtID, date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Quote handles POST /bookings/quote
// @Summary Quote a slot selection
// @Description Returns the longest contiguous run achievable from the starting slot, capped at requested_hours, with its price. A shorter run than requested is returned silently.
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Selection parameters"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} errors.AppError
// @Router /private/bookings/quote [post]
func (c *BookingController) Quote(ctx echo.Context) error {
	var req dto.QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.BookingService.Quote(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Create handles POST /bookings
// @Summary Book a court
// @Description Commits a reservation spanning the selected contiguous run as a single booking record
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking details"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/bookings [post]
func (c *BookingController) Create(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.BookingService.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Booking confirmed")
}

// GetMyBookings handles GET /bookings
// @Summary List my bookings
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.BookingResponse
// @Failure 401 {object} errors.AppError
// @Router /private/bookings [get]
func (c *BookingController) GetMyBookings(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.BookingService.GetMyBookings(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Cancel handles POST /bookings/:id/cancel
// @Summary Cancel a booking
// @Description Flips a confirmed booking to cancelled and frees its slots. Bookings whose start time has passed cannot be cancelled.
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} errors.AppError
// @Failure 422 {object} errors.AppError
// @Router /private/bookings/{id}/cancel [post]
func (c *BookingController) Cancel(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid booking ID")
	}

	result, appErr := c.BookingService.Cancel(ctx.Request().Context(), userID, bookingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Booking cancelled")
}
