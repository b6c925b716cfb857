package ports

import (
	"context"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update persists username, role and department assignment changes.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	// FindHead returns the user with role=head assigned to the department,
	// or domain.ErrUserNotFound when the department has no head.
	FindHead(ctx context.Context, departmentID string) (*domain.User, error)
}
