package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"casaok/internal/usecase"
)

type RoleMiddleware struct {
	auth *usecase.AuthUseCase
}

func NewRoleMiddleware(auth *usecase.AuthUseCase) *RoleMiddleware {
	return &RoleMiddleware{
		auth: auth,
	}
}

// Require gates the route to the given roles. Resolution is the role
// guard's: a missing profile or empty role counts as cliente.
func (m *RoleMiddleware) Require(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			role, err := m.auth.ResolveRole(c.Request().Context(), uid)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify role")
			}

			for _, allowed := range roles {
				if role == allowed {
					c.Set("role", role)
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Insufficient privileges")
		}
	}
}

// Resolve sets the caller's role in the context without gating the route,
// for handlers that branch on it.
func (m *RoleMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return next(c)
		}

		role, err := m.auth.ResolveRole(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify role")
		}
		c.Set("role", role)

		return next(c)
	}
}
