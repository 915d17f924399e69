package controller

import (
	"pickleball-api/core/constants"
	"pickleball-api/core/controller"
	"pickleball-api/core/errors"
	"pickleball-api/core/params"
	"pickleball-api/core/utils"
	"pickleball-api/modules/notification/dto"
	"pickleball-api/modules/notification/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	service *service.NotificationService
	controller.BaseController
}

func NewNotificationController(service *service.NotificationService) *NotificationController {
	return &NotificationController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetMyNotifications retrieves user's notifications
// @Summary List my notifications
// @Description Returns paginated notifications for the current user, newest first
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.AppError
// @Router /private/notifications [get]
func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	queryParams := params.NewQueryParams(ctx)
	result, getErr := c.service.GetMyNotifications(ctx.Request().Context(), userID, *queryParams)
	if getErr != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to get notifications", getErr)
	}

	return c.SuccessResponse(ctx, result, "Notifications retrieved successfully")
}

// MarkAsRead marks specific notifications as read
// @Summary Mark notifications as read
// @Tags Notification
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.MarkAsReadRequest true "Notification IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/notifications/mark-read [put]
func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.MarkAsReadRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if err := c.service.MarkAsRead(ctx.Request().Context(), userID, req.IDs); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to mark as read", err)
	}

	return c.SuccessResponse(ctx, nil, "Marked as read successfully")
}

// MarkAllAsRead marks all notifications as read
// @Summary Mark all notifications as read
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.AppError
// @Router /private/notifications/mark-all-read [put]
func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	if err := c.service.MarkAllAsRead(ctx.Request().Context(), userID); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to mark all as read", err)
	}

	return c.SuccessResponse(ctx, nil, "Marked all as read successfully")
}

// CountUnread counts unread notifications
// @Summary Count unread notifications
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 401 {object} errors.AppError
// @Router /private/notifications/unread-count [get]
func (c *NotificationController) CountUnread(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	count, err := c.service.CountUnread(ctx.Request().Context(), userID)
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to count unread", err)
	}

	return c.SuccessResponse(ctx, map[string]int{"count": count}, "Unread count retrieved")
}

func getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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
