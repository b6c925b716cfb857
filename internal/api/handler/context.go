package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/univeval/evaluation-system/internal/api/middleware"
	"github.com/univeval/evaluation-system/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - user id and role must be non-empty (presence proves the middleware ran).
//   - the head role requires a department claim; a head token without one is
//     structurally valid but operationally unusable, so reject with 401.
func ctxClaims(c echo.Context) (userID string, role domain.Role, departmentID string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	roleStr, _ := c.Get(middleware.CtxRole).(string)
	if userID == "" || roleStr == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role = domain.Role(roleStr)
	departmentID, _ = c.Get(middleware.CtxDepartmentID).(string)
	if role == domain.RoleHead && departmentID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing department identity")
	}

	return userID, role, departmentID, nil
}
