package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/univeval/evaluation-system/internal/api/metrics"
	"github.com/univeval/evaluation-system/internal/core/domain"
	"github.com/univeval/evaluation-system/internal/core/ports"
)

// EvaluationService implements public evaluation intake and head read-back.
type EvaluationService struct {
	questionnaires ports.QuestionnaireRepository
	evaluations    ports.EvaluationRepository
	log            zerolog.Logger
}

func NewEvaluationService(questionnaires ports.QuestionnaireRepository, evaluations ports.EvaluationRepository, log zerolog.Logger) *EvaluationService {
	return &EvaluationService{questionnaires: questionnaires, evaluations: evaluations, log: log}
}

// Submit records a response against the questionnaire only when it is active
// at the instant of the check. An inactive or unknown questionnaire is the
// same outcome for the public caller: not found. Repeated submissions create
// repeated records; there is no idempotency key and no rate limit.
func (s *EvaluationService) Submit(ctx context.Context, questionnaireID string, input ports.SubmitEvaluationInput) (*domain.EvaluationResponse, error) {
	q, err := s.questionnaires.FindActive(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	resp := &domain.EvaluationResponse{
		QuestionnaireID: q.ID,
		Name:            input.Name,
		Date:            input.Date,
		Time:            input.Time,
		ClientCategory:  input.ClientCategory,
		Ratings:         input.Ratings,
		FeedbackType:    input.FeedbackType,
		FeedbackMessage: input.FeedbackMessage,
	}

	created, err := s.evaluations.Insert(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("submit evaluation: %w", err)
	}

	metrics.EvaluationsSubmittedTotal.Inc()
	s.log.Info().Str("questionnaire_id", q.ID).Str("response_id", created.ID).Msg("evaluation submitted")
	return created, nil
}

// ListForHead returns every response for the head's own department, joined
// through the department's questionnaires.
func (s *EvaluationService) ListForHead(ctx context.Context, departmentID string) ([]*domain.EvaluationResponse, error) {
	return s.evaluations.ListByDepartment(ctx, departmentID)
}
