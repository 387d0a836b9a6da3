package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole admits only an authenticated identity with exactly the
// given role. There is no role hierarchy: each route declares the one
// role it serves.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || user.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "not authorized as "+role)
			}
			return next(c)
		}
	}
}
