package domain

import (
	"errors"
	"time"
)

// Role is the closed set of roles a user can hold. Roles travel inside JWT
// claims, so they are modelled as a typed string rather than free text.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleHR    Role = "hr"
	RoleHead  Role = "head"
	RoleUser  Role = "user"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleHead, RoleUser:
		return true
	}
	return false
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrAdminUndeletable = errors.New("cannot delete admin")
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated actor in the system.
// DepartmentID is non-empty only for heads; admin and hr are department-less.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	DepartmentID string    `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
