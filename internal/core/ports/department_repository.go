package ports

import (
	"context"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

// DepartmentRepository defines persistence operations for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) (*domain.Department, error)
	// FindByNormalizedName looks a department up by its canonical
	// (trimmed, case-folded) name.
	FindByNormalizedName(ctx context.Context, normalized string) (*domain.Department, error)
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	// DeleteCascade removes the department together with all of its users,
	// questionnaires, and their evaluation responses, atomically.
	DeleteCascade(ctx context.Context, id string) error
}
