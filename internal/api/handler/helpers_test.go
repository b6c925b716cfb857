package handler

import (
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/univeval/evaluation-system/internal/api/middleware"
	"github.com/univeval/evaluation-system/internal/core/domain"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setClaims(c echo.Context, userID string, role domain.Role, departmentID string) {
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxRole, string(role))
	c.Set(middleware.CtxDepartmentID, departmentID)
}
