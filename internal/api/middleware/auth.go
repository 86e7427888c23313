package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/supermercado/backoffice-system/internal/core/ports"
)

// Auth validates the bearer JWT, checks that its session is still live in
// the session store (sign-out revokes it), and injects claims into context.
func Auth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			tokenID, _ := claims["jti"].(string)
			if tokenID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			live, err := sessions.Exists(c.Request().Context(), tokenID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session check failed")
			}
			if !live {
				return echo.NewHTTPError(http.StatusUnauthorized, "session revoked")
			}

			c.Set("user_id", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("token_id", tokenID)

			return next(c)
		}
	}
}
