package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ChatAsker is the interface the handler uses to reach the AI helper.
type ChatAsker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// ChatHandler proxies chat prompts to the external language model.
type ChatHandler struct {
	chat ChatAsker
}

func NewChatHandler(chat ChatAsker) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Ask handles POST /chat (head-only) and POST /public/chat (open); both
// routes share this handler; the guard difference lives in the router.
//
// @Summary      Ask the AI assistant
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Prompt"
// @Success      200   {object}  chatResponse
// @Failure      403   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /chat [post]
func (h *ChatHandler) Ask(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.chat.Ask(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
