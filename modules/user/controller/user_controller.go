package controller

import (
	"pickleball-api/core/constants"
	"pickleball-api/core/controller"
	"pickleball-api/core/errors"
	"pickleball-api/core/utils"
	"pickleball-api/modules/user/dto"
	"pickleball-api/modules/user/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
}

func NewUserController(svc service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
	}
}

func (c *UserController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// GetMe handles GET /users/me
// @Summary Get my profile
// @Tags User
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} errors.AppError
// @Router /private/users/me [get]
func (c *UserController) GetMe(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.UserService.GetProfile(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateMe handles PUT /users/me
// @Summary Update my profile
// @Tags User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} errors.AppError
// @Router /private/users/me [put]
func (c *UserController) UpdateMe(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.UserService.UpdateProfile(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Profile updated successfully")
}
