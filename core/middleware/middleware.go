package middleware

import (
	"net/http"
	"strings"

	"pickleball-api/core/constants"
	"pickleball-api/core/errors"
	"pickleball-api/core/logger"
	"pickleball-api/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// AuthMiddleware validates the bearer token issued by the identity service
// and stores the parsed claims in the request context
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{
					"code":    errors.ErrMissingAuthorizationHeader,
					"message": "missing authorization header",
				})
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{
					"code":    errors.ErrInvalidTokenFormat,
					"message": "authorization header must be 'Bearer {token}'",
				})
			}

			claims, err := utils.ValidateAndParseToken(parts[1])
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:InvalidToken", "error", err)
				code := errors.ErrUnauthorized
				if ae, ok := err.(*errors.AppError); ok {
					code = ae.Code
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{
					"code":    code,
					"message": "invalid or expired token",
				})
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
