package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/univeval/evaluation-system/internal/api/metrics"
	"github.com/univeval/evaluation-system/internal/core/ports"
)

// ChatService forwards prompts to the AI gateway. No retry, no caching: a
// failed upstream call is the caller's failure too.
type ChatService struct {
	gateway ports.AIGateway
	log     zerolog.Logger
}

func NewChatService(gateway ports.AIGateway, log zerolog.Logger) *ChatService {
	return &ChatService{gateway: gateway, log: log}
}

func (s *ChatService) Ask(ctx context.Context, prompt string) (string, error) {
	reply, err := s.gateway.Ask(ctx, prompt)
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Msg("ai gateway call failed")
		return "", err
	}

	metrics.AIRequestsTotal.WithLabelValues("ok").Inc()
	return reply, nil
}
