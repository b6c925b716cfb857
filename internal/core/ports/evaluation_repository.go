package ports

import (
	"context"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

// EvaluationRepository defines persistence operations for evaluation responses.
type EvaluationRepository interface {
	Insert(ctx context.Context, resp *domain.EvaluationResponse) (*domain.EvaluationResponse, error)
	// ListByDepartment returns every response submitted against any
	// questionnaire of the department.
	ListByDepartment(ctx context.Context, departmentID string) ([]*domain.EvaluationResponse, error)
}
