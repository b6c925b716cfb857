package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/univeval/evaluation-system/internal/api/metrics"
	"github.com/univeval/evaluation-system/internal/core/domain"
	"github.com/univeval/evaluation-system/internal/core/ports"
)

// ActiveCache abstracts the public active-questionnaire cache (Redis).
// A nil questionnaire with a nil error is a cache miss.
type ActiveCache interface {
	Get(ctx context.Context) (*domain.Questionnaire, error)
	Set(ctx context.Context, q *domain.Questionnaire) error
	Invalidate(ctx context.Context) error
}

// QuestionnaireService implements the per-department single-active lifecycle.
type QuestionnaireService struct {
	questionnaires ports.QuestionnaireRepository
	cache          ActiveCache
	log            zerolog.Logger
}

func NewQuestionnaireService(questionnaires ports.QuestionnaireRepository, cache ActiveCache, log zerolog.Logger) *QuestionnaireService {
	return &QuestionnaireService{questionnaires: questionnaires, cache: cache, log: log}
}

// Create stores a new questionnaire in draft state. Only activation makes it
// visible to the public endpoint.
func (s *QuestionnaireService) Create(ctx context.Context, content, departmentID, createdBy string) (*domain.Questionnaire, error) {
	q := &domain.Questionnaire{
		Content:      content,
		DepartmentID: departmentID,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now().UTC(),
		IsActive:     false,
	}

	created, err := s.questionnaires.Create(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("create questionnaire: %w", err)
	}

	s.log.Info().Str("questionnaire_id", created.ID).Str("department_id", departmentID).Msg("questionnaire created")
	return created, nil
}

func (s *QuestionnaireService) List(ctx context.Context, role domain.Role, departmentID string) ([]*domain.Questionnaire, error) {
	switch role {
	case domain.RoleAdmin:
		return s.questionnaires.ListAll(ctx)
	case domain.RoleHead:
		return s.questionnaires.ListByDepartment(ctx, departmentID)
	default:
		return nil, domain.ErrForbidden
	}
}

// Activate supersedes any previously active questionnaire of the department.
// The repository applies both steps in one transaction, so a reader never
// observes two active questionnaires for the same department.
func (s *QuestionnaireService) Activate(ctx context.Context, departmentID, questionnaireID string) error {
	if err := s.questionnaires.Activate(ctx, departmentID, questionnaireID); err != nil {
		return err
	}

	// The globally most-recent active questionnaire may have changed.
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("active questionnaire cache invalidation failed")
	}

	metrics.QuestionnairesActivatedTotal.Inc()
	s.log.Info().Str("questionnaire_id", questionnaireID).Str("department_id", departmentID).Msg("questionnaire activated")
	return nil
}

// PublicActive returns the most recently created active questionnaire across
// all departments. The lookup is intentionally global, not per-department:
// the public endpoint surfaces exactly one questionnaire system-wide.
func (s *QuestionnaireService) PublicActive(ctx context.Context) (*domain.Questionnaire, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("active questionnaire cache read failed")
	} else if cached != nil {
		metrics.ActiveQuestionnaireCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.ActiveQuestionnaireCacheTotal.WithLabelValues("miss").Inc()
	}

	q, err := s.questionnaires.FindLatestActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, q); err != nil {
		s.log.Warn().Err(err).Msg("active questionnaire cache write failed")
	}
	return q, nil
}
