package ports

import (
	"context"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

// QuestionnaireService defines questionnaire lifecycle use cases.
type QuestionnaireService interface {
	// Create stores a new questionnaire in draft state for the head's
	// department.
	Create(ctx context.Context, content, departmentID, createdBy string) (*domain.Questionnaire, error)
	// List returns all questionnaires for admins and the head's own
	// department for heads; any other role is forbidden.
	List(ctx context.Context, role domain.Role, departmentID string) ([]*domain.Questionnaire, error)
	// Activate makes the questionnaire the single active one of the
	// department, superseding any previously active questionnaire.
	Activate(ctx context.Context, departmentID, questionnaireID string) error
	// PublicActive returns the most recently created active questionnaire
	// across all departments.
	PublicActive(ctx context.Context) (*domain.Questionnaire, error)
}
