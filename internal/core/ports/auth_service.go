package ports

import (
	"context"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

// LoginResult carries the bearer token plus the claims the frontend needs
// without decoding it.
type LoginResult struct {
	Token        string
	Role         domain.Role
	DepartmentID string
}

// AuthService implements login and public self-registration.
type AuthService interface {
	// Login verifies credentials and mints a signed, time-limited token
	// encoding {id, role, department_id}.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Register creates a plain "user" account.
	Register(ctx context.Context, username, password string) (*domain.User, error)
}
