package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/univeval/evaluation-system/internal/core/ports"
)

// QuestionnaireHandler handles questionnaire lifecycle requests.
type QuestionnaireHandler struct {
	service ports.QuestionnaireService
}

func NewQuestionnaireHandler(service ports.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{service: service}
}

type createQuestionnaireRequest struct {
	Content string `json:"content" validate:"required"`
}

type createQuestionnaireResponse struct {
	ID string `json:"id"`
}

type publicQuestionnaireResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// Create handles POST /questionnaires. Heads author questionnaires for their
// own department; the department comes from the token, not the payload.
//
// @Summary      Create a questionnaire (draft)
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuestionnaireRequest  true  "Questionnaire content"
// @Success      200   {object}  createQuestionnaireResponse
// @Failure      403   {object}  errorResponse
// @Router       /questionnaires [post]
func (h *QuestionnaireHandler) Create(c echo.Context) error {
	userID, _, departmentID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createQuestionnaireRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	q, err := h.service.Create(c.Request().Context(), req.Content, departmentID, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createQuestionnaireResponse{ID: q.ID})
}

// List handles GET /questionnaires: admins see everything, heads their own
// department.
//
// @Summary      List questionnaires
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Questionnaire
// @Failure      403  {object}  errorResponse
// @Router       /questionnaires [get]
func (h *QuestionnaireHandler) List(c echo.Context) error {
	_, role, departmentID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	list, err := h.service.List(c.Request().Context(), role, departmentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Activate handles POST /questionnaires/:id/activate. The activation is
// scoped to the head's department: a questionnaire of another department is
// reported as not found.
//
// @Summary      Activate a questionnaire
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Questionnaire id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /questionnaires/{id}/activate [post]
func (h *QuestionnaireHandler) Activate(c echo.Context) error {
	_, _, departmentID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Activate(c.Request().Context(), departmentID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Activated"})
}

// PublicActive handles GET /public/active-questionnaire. No auth; returns
// the single system-wide active questionnaire.
//
// @Summary      Get the public active questionnaire
// @Tags         public
// @Produce      json
// @Success      200  {object}  publicQuestionnaireResponse
// @Failure      404  {object}  errorResponse
// @Router       /public/active-questionnaire [get]
func (h *QuestionnaireHandler) PublicActive(c echo.Context) error {
	q, err := h.service.PublicActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, publicQuestionnaireResponse{ID: q.ID, Content: q.Content})
}
