package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"logistics/internal/generated/servers"
	"logistics/internal/pkg/auth"
)

// principalContextKey is the echo context key under which the authenticated
// principal is stored by the auth middleware.
const principalContextKey = "auth.principal"

// AuthMiddleware verifies the bearer token on every request and stores the
// resulting principal in the request context. The health endpoint and the
// swagger UI stay open.
func AuthMiddleware(issuer *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			path := ctx.Request().URL.Path
			if strings.HasSuffix(path, "/health") || strings.HasPrefix(path, "/swagger") ||
				path == "/openapi.json" {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			principal, err := issuer.Verify(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid bearer token",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// principalFrom extracts the authenticated principal stored by AuthMiddleware.
func principalFrom(ctx echo.Context) (auth.Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(auth.Principal)
	return principal, ok
}
