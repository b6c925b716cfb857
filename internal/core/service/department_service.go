package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/univeval/evaluation-system/internal/core/domain"
	"github.com/univeval/evaluation-system/internal/core/ports"
)

// DepartmentService implements the department registry: idempotent creation,
// head assignment, and cascading deletion.
type DepartmentService struct {
	departments ports.DepartmentRepository
	users       ports.UserRepository
	log         zerolog.Logger
}

func NewDepartmentService(departments ports.DepartmentRepository, users ports.UserRepository, log zerolog.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, users: users, log: log}
}

// CreateOrGet creates the department, unless one with the same normalized
// name already exists, in which case the existing record is returned. Not an error:
// "Library " and "library" are the same department.
func (s *DepartmentService) CreateOrGet(ctx context.Context, name string) (*domain.Department, error) {
	normalized := domain.NormalizeDepartmentName(name)

	existing, err := s.departments.FindByNormalizedName(ctx, normalized)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrDepartmentNotFound) {
		return nil, fmt.Errorf("lookup department: %w", err)
	}

	dept := &domain.Department{
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.departments.Create(ctx, dept)
	if err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}

	s.log.Info().Str("department_id", created.ID).Str("name", created.Name).Msg("department created")
	return created, nil
}

func (s *DepartmentService) List(ctx context.Context) ([]ports.DepartmentSummary, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.DepartmentSummary, 0, len(depts))
	for _, d := range depts {
		summary := ports.DepartmentSummary{ID: d.ID, Name: d.Name}
		head, err := s.users.FindHead(ctx, d.ID)
		if err == nil {
			summary.HeadName = head.Username
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// AssignHead promotes username to head of the department. A previous head of
// the same department is demoted first so the department never carries two
// heads at once.
func (s *DepartmentService) AssignHead(ctx context.Context, departmentID, username string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	prev, err := s.users.FindHead(ctx, departmentID)
	if err == nil && prev.ID != user.ID {
		if err := s.demote(ctx, prev); err != nil {
			return fmt.Errorf("demote previous head: %w", err)
		}
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	user.Role = domain.RoleHead
	user.DepartmentID = departmentID
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("assign head: %w", err)
	}

	s.log.Info().Str("department_id", departmentID).Str("user_id", user.ID).Msg("head assigned")
	return nil
}

func (s *DepartmentService) RemoveHead(ctx context.Context, departmentID string) error {
	head, err := s.users.FindHead(ctx, departmentID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrHeadNotAssigned
		}
		return err
	}

	if err := s.demote(ctx, head); err != nil {
		return fmt.Errorf("remove head: %w", err)
	}

	s.log.Info().Str("department_id", departmentID).Str("user_id", head.ID).Msg("head removed")
	return nil
}

func (s *DepartmentService) Delete(ctx context.Context, departmentID string) error {
	if _, err := s.departments.FindByID(ctx, departmentID); err != nil {
		return err
	}
	if err := s.departments.DeleteCascade(ctx, departmentID); err != nil {
		return fmt.Errorf("delete department: %w", err)
	}

	s.log.Info().Str("department_id", departmentID).Msg("department deleted")
	return nil
}

func (s *DepartmentService) demote(ctx context.Context, user *domain.User) error {
	user.Role = domain.RoleUser
	user.DepartmentID = ""
	user.UpdatedAt = time.Now().UTC()
	return s.users.Update(ctx, user)
}
