package ports

import (
	"context"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

// DepartmentSummary is the list view: department plus the username of its
// head, when one is assigned.
type DepartmentSummary struct {
	ID       string
	Name     string
	HeadName string
}

// DepartmentService defines department registry use cases.
type DepartmentService interface {
	// CreateOrGet is an idempotent upsert-by-name: when a department with the
	// same normalized name exists, the existing record is returned.
	CreateOrGet(ctx context.Context, name string) (*domain.Department, error)
	List(ctx context.Context) ([]DepartmentSummary, error)
	// AssignHead promotes the named user to head of the department. Any
	// previous head of that department is demoted first, so the department
	// never ends up with two heads.
	AssignHead(ctx context.Context, departmentID, username string) error
	// RemoveHead demotes the department's head back to a plain user.
	RemoveHead(ctx context.Context, departmentID string) error
	// Delete cascades to the department's users, questionnaires, and
	// evaluation responses.
	Delete(ctx context.Context, departmentID string) error
}
