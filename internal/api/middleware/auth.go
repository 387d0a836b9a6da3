package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/leadflow/crm-api/internal/core/domain"
	"github.com/leadflow/crm-api/internal/core/ports"
)

// UserContextKey is the echo context key under which Auth stores the
// resolved *domain.User.
const UserContextKey = "user"

// Auth validates the bearer token and resolves its subject to a live
// user record, which it attaches to the context. A token whose subject
// no longer exists is rejected outright rather than passed through with
// an empty identity.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			id, _ := claims["id"].(string)
			if id == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			user, err := users.FindByID(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser extracts the identity attached by Auth. Returns nil when
// the middleware did not run.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(UserContextKey).(*domain.User)
	return user
}
