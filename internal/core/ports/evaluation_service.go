package ports

import (
	"context"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

// SubmitEvaluationInput carries a public evaluation submission.
type SubmitEvaluationInput struct {
	Name            string
	Date            string
	Time            string
	ClientCategory  string
	Ratings         []int
	FeedbackType    string
	FeedbackMessage string
}

// EvaluationService defines evaluation intake and read-back.
type EvaluationService interface {
	// Submit records a response against the questionnaire only if it is
	// active at the instant of the check.
	Submit(ctx context.Context, questionnaireID string, input SubmitEvaluationInput) (*domain.EvaluationResponse, error)
	// ListForHead returns every response for the head's own department.
	ListForHead(ctx context.Context, departmentID string) ([]*domain.EvaluationResponse, error)
}
