package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "forum/internal/delivery/context"
	domainerrors "forum/internal/domain/errors"
	"forum/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates access tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid Bearer token and stores its account ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage(err.Error())
		}

		deliverycontext.SetAccountID(c, claims.AccountID)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("account_id", claims.AccountID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
