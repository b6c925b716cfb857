package ports

import (
	"context"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

// UpdateUserInput carries the fields an admin/hr user may rewrite.
type UpdateUserInput struct {
	Username     string
	Role         string
	DepartmentID string
}

// UserService defines administrative user management.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) error
	// Delete removes a user; admin accounts are undeletable.
	Delete(ctx context.Context, id string) error
}
