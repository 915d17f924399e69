package controller

import (
	"pickleball-api/core/constants"
	"pickleball-api/core/controller"
	"pickleball-api/core/errors"
	"pickleball-api/core/params"
	"pickleball-api/core/utils"
	"pickleball-api/modules/shop/dto"
	"pickleball-api/modules/shop/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ShopController struct {
	controller.BaseController
	ShopService service.ShopServiceInterface
}

func NewShopController(svc service.ShopServiceInterface) *ShopController {
	return &ShopController{
		BaseController: controller.NewBaseController(),
		ShopService:    svc,
	}
}

func (c *ShopController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// ListProducts handles GET /products
// @Summary List shop products
// @Tags Shop
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {array} dto.ProductResponse
// @Router /public/products [get]
func (c *ShopController) ListProducts(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)

	products, total, appErr := c.ShopService.ListProducts(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, map[string]interface{}{
		"items":       products,
		"total_items": total,
		"page_number": queryParams.PageNumber,
		"page_size":   queryParams.PageSize,
	}, "Success")
}

// CreateProduct handles POST /products
// @Summary Create a product
// @Tags Shop
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SaveProductRequest true "Product details"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} errors.AppError
// @Router /private/products [post]
func (c *ShopController) CreateProduct(ctx echo.Context) error {
	var req dto.SaveProductRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ShopService.CreateProduct(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Product created")
}

// CreateOrder handles POST /orders
// @Summary Place an order
// @Description Prices lines from the live catalog and reserves stock. Totals are computed server-side.
// @Tags Shop
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order lines"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} errors.AppError
// @Router /private/orders [post]
func (c *ShopController) CreateOrder(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ShopService.CreateOrder(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Order placed")
}

// GetMyOrders handles GET /orders
// @Summary List my orders
// @Tags Shop
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Failure 401 {object} errors.AppError
// @Router /private/orders [get]
func (c *ShopController) GetMyOrders(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.ShopService.GetMyOrders(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// PayOrder handles POST /orders/:id/pay
// @Summary Pay a pending order
// @Tags Shop
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} errors.AppError
// @Router /private/orders/{id}/pay [post]
func (c *ShopController) PayOrder(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid order ID")
	}

	result, appErr := c.ShopService.PayOrder(ctx.Request().Context(), userID, orderID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Order paid")
}

// CancelOrder handles POST /orders/:id/cancel
// @Summary Cancel a pending order
// @Tags Shop
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} errors.AppError
// @Router /private/orders/{id}/cancel [post]
func (c *ShopController) CancelOrder(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid order ID")
	}

	result, appErr := c.ShopService.CancelOrder(ctx.Request().Context(), userID, orderID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Order cancelled")
}
