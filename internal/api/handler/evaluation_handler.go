package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/univeval/evaluation-system/internal/core/ports"
)

// EvaluationHandler handles public evaluation intake and the head read-back.
type EvaluationHandler struct {
	service ports.EvaluationService
}

func NewEvaluationHandler(service ports.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{service: service}
}

type submitEvaluationRequest struct {
	Name            string `json:"name"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	ClientCategory  string `json:"client_category" validate:"required"`
	Ratings         []int  `json:"ratings" validate:"required,min=1,dive,gte=1,lte=5"`
	FeedbackType    string `json:"feedback_type" validate:"required"`
	FeedbackMessage string `json:"feedback_message" validate:"required"`
}

// Submit handles POST /evaluations/:id/submit. Public, unauthenticated, and
// deliberately without idempotency: each call creates a new record as long as
// the questionnaire is active at the instant of the check.
//
// @Summary      Submit a public evaluation
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Questionnaire id"
// @Param        body  body      submitEvaluationRequest  true  "Evaluation payload"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  errorResponse
// @Router       /evaluations/{id}/submit [post]
func (h *EvaluationHandler) Submit(c echo.Context) error {
	var req submitEvaluationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.Submit(c.Request().Context(), c.Param("id"), ports.SubmitEvaluationInput{
		Name:            req.Name,
		Date:            req.Date,
		Time:            req.Time,
		ClientCategory:  req.ClientCategory,
		Ratings:         req.Ratings,
		FeedbackType:    req.FeedbackType,
		FeedbackMessage: req.FeedbackMessage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Submitted"})
}

// ListForHead handles GET /head/evaluations: responses for the head's own
// department only.
//
// @Summary      List evaluations for the head's department
// @Tags         evaluations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.EvaluationResponse
// @Failure      403  {object}  errorResponse
// @Router       /head/evaluations [get]
func (h *EvaluationHandler) ListForHead(c echo.Context) error {
	_, _, departmentID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	list, err := h.service.ListForHead(c.Request().Context(), departmentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}
