package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/univeval/evaluation-system/internal/core/ports"
)

// DepartmentHandler handles department registry requests.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

type createDepartmentRequest struct {
	Name string `json:"name" validate:"required"`
}

type departmentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	HeadName string `json:"head_name,omitempty"`
}

type assignHeadRequest struct {
	Username string `json:"username" validate:"required"`
}

// List handles GET /departments: departments with their head's username.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   departmentResponse
// @Failure      403  {object}  errorResponse
// @Router       /departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	summaries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]departmentResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, departmentResponse{ID: s.ID, Name: s.Name, HeadName: s.HeadName})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /departments. Creation is an idempotent upsert-by-name:
// submitting an existing name (any casing/whitespace) returns the existing
// department instead of erroring.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDepartmentRequest  true  "Department name"
// @Success      200   {object}  departmentResponse
// @Failure      403   {object}  errorResponse
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.service.CreateOrGet(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departmentResponse{ID: dept.ID, Name: dept.Name})
}

// AssignHead handles PUT /departments/:id/assign-head.
//
// @Summary      Assign a department head
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Department id"
// @Param        body  body      assignHeadRequest  true  "Username to promote"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /departments/{id}/assign-head [put]
func (h *DepartmentHandler) AssignHead(c echo.Context) error {
	var req assignHeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.AssignHead(c.Request().Context(), c.Param("id"), req.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Head assigned"})
}

// RemoveHead handles PUT /departments/:id/remove-head.
//
// @Summary      Remove the department head
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Department id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /departments/{id}/remove-head [put]
func (h *DepartmentHandler) RemoveHead(c echo.Context) error {
	if err := h.service.RemoveHead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Head removed"})
}

// Delete handles DELETE /departments/:id. The delete cascades to users, questionnaires,
// and their responses.
//
// @Summary      Delete a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Department id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Department deleted"})
}
