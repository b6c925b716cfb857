package ports

import (
	"context"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

// QuestionnaireRepository defines persistence operations for questionnaires.
type QuestionnaireRepository interface {
	Create(ctx context.Context, q *domain.Questionnaire) (*domain.Questionnaire, error)
	// FindActive retrieves the questionnaire only if it is active right now.
	FindActive(ctx context.Context, id string) (*domain.Questionnaire, error)
	ListAll(ctx context.Context) ([]*domain.Questionnaire, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]*domain.Questionnaire, error)
	// Activate atomically deactivates every questionnaire in the department
	// and activates the target. The target must belong to the department;
	// otherwise domain.ErrQuestionnaireNotFound is returned and the
	// department's active set is left unchanged.
	Activate(ctx context.Context, departmentID, questionnaireID string) error
	// FindLatestActive returns the most recently created active questionnaire
	// across all departments, or domain.ErrNoActiveQuestionnaire.
	FindLatestActive(ctx context.Context) (*domain.Questionnaire, error)
}
