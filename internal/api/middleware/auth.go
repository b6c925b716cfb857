package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	CtxUserID       = "user_id"
	CtxRole         = "role"
	CtxDepartmentID = "department_id"
)

// Auth validates the bearer JWT and injects its claims into the echo context.
// Expired tokens and malformed tokens are reported with distinct messages but
// the same 401 status. Tokens missing the id or role claim are rejected: a
// payload without an identity is unusable regardless of its signature.
func Auth(jwtSecret string) echo.MiddlewareFunc {
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
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			id, _ := claims["id"].(string)
			role, _ := claims["role"].(string)
			if id == "" || role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token payload")
			}

			departmentID, _ := claims["department_id"].(string)

			c.Set(CtxUserID, id)
			c.Set(CtxRole, role)
			c.Set(CtxDepartmentID, departmentID)

			return next(c)
		}
	}
}
