package utils

import (
	stderrors "errors"
	"fmt"

	"pickleball-api/core/config"
	"pickleball-api/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the payload issued by the external identity service
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	Role   string    `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ValidateAndParseToken verifies the bearer token signature and expiry
func ValidateAndParseToken(tokenString string) (*TokenClaims, error) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewAppError(errors.ErrTokenExpired, "token expired", err)
		}
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token", nil)
	}

	return claims, nil
}
