package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// --- users ---

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User // by id
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.seq)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindHead(_ context.Context, departmentID string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Role == domain.RoleHead && u.DepartmentID == departmentID {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneUser(r.users[id]))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) heads(departmentID string) []*domain.User {
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == domain.RoleHead && u.DepartmentID == departmentID {
			out = append(out, cloneUser(u))
		}
	}
	return out
}

// --- departments ---

type stubDepartmentRepo struct {
	seq      int
	depts    map[string]*domain.Department
	cascaded []string
}

func newStubDepartmentRepo() *stubDepartmentRepo {
	return &stubDepartmentRepo{depts: make(map[string]*domain.Department)}
}

func (r *stubDepartmentRepo) Create(_ context.Context, dept *domain.Department) (*domain.Department, error) {
	r.seq++
	created := *dept
	created.ID = fmt.Sprintf("d%d", r.seq)
	r.depts[created.ID] = &created
	return &created, nil
}

func (r *stubDepartmentRepo) FindByNormalizedName(_ context.Context, normalized string) (*domain.Department, error) {
	for _, d := range r.depts {
		if domain.NormalizeDepartmentName(d.Name) == normalized {
			clone := *d
			return &clone, nil
		}
	}
	return nil, domain.ErrDepartmentNotFound
}

func (r *stubDepartmentRepo) FindByID(_ context.Context, id string) (*domain.Department, error) {
	d, ok := r.depts[id]
	if !ok {
		return nil, domain.ErrDepartmentNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDepartmentRepo) List(_ context.Context) ([]*domain.Department, error) {
	ids := make([]string, 0, len(r.depts))
	for id := range r.depts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.Department, 0, len(ids))
	for _, id := range ids {
		clone := *r.depts[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubDepartmentRepo) DeleteCascade(_ context.Context, id string) error {
	if _, ok := r.depts[id]; !ok {
		return domain.ErrDepartmentNotFound
	}
	delete(r.depts, id)
	r.cascaded = append(r.cascaded, id)
	return nil
}

// --- questionnaires ---

type stubQuestionnaireRepo struct {
	seq int
	qs  map[string]*domain.Questionnaire
}

func newStubQuestionnaireRepo() *stubQuestionnaireRepo {
	return &stubQuestionnaireRepo{qs: make(map[string]*domain.Questionnaire)}
}

func (r *stubQuestionnaireRepo) Create(_ context.Context, q *domain.Questionnaire) (*domain.Questionnaire, error) {
	r.seq++
	created := *q
	created.ID = fmt.Sprintf("q%d", r.seq)
	r.qs[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubQuestionnaireRepo) FindActive(_ context.Context, id string) (*domain.Questionnaire, error) {
	q, ok := r.qs[id]
	if !ok || !q.IsActive {
		return nil, domain.ErrQuestionnaireNotFound
	}
	clone := *q
	return &clone, nil
}

func (r *stubQuestionnaireRepo) ListAll(_ context.Context) ([]*domain.Questionnaire, error) {
	return r.listWhere(func(*domain.Questionnaire) bool { return true }), nil
}

func (r *stubQuestionnaireRepo) ListByDepartment(_ context.Context, departmentID string) ([]*domain.Questionnaire, error) {
	return r.listWhere(func(q *domain.Questionnaire) bool { return q.DepartmentID == departmentID }), nil
}

// Activate mirrors the repository contract: a missing or foreign target
// fails and leaves the department's active set untouched.
func (r *stubQuestionnaireRepo) Activate(_ context.Context, departmentID, questionnaireID string) error {
	target, ok := r.qs[questionnaireID]
	if !ok || target.DepartmentID != departmentID {
		return domain.ErrQuestionnaireNotFound
	}
	for _, q := range r.qs {
		if q.DepartmentID == departmentID {
			q.IsActive = false
		}
	}
	target.IsActive = true
	return nil
}

func (r *stubQuestionnaireRepo) FindLatestActive(_ context.Context) (*domain.Questionnaire, error) {
	var latest *domain.Questionnaire
	for _, q := range r.qs {
		if !q.IsActive {
			continue
		}
		if latest == nil || q.CreatedAt.After(latest.CreatedAt) {
			latest = q
		}
	}
	if latest == nil {
		return nil, domain.ErrNoActiveQuestionnaire
	}
	clone := *latest
	return &clone, nil
}

func (r *stubQuestionnaireRepo) listWhere(keep func(*domain.Questionnaire) bool) []*domain.Questionnaire {
	ids := make([]string, 0, len(r.qs))
	for id := range r.qs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []*domain.Questionnaire
	for _, id := range ids {
		if keep(r.qs[id]) {
			clone := *r.qs[id]
			out = append(out, &clone)
		}
	}
	return out
}

func (r *stubQuestionnaireRepo) activeIn(departmentID string) []*domain.Questionnaire {
	var out []*domain.Questionnaire
	for _, q := range r.qs {
		if q.DepartmentID == departmentID && q.IsActive {
			clone := *q
			out = append(out, &clone)
		}
	}
	return out
}

// --- evaluations ---

type stubEvaluationRepo struct {
	seq       int
	qs        *stubQuestionnaireRepo
	responses []*domain.EvaluationResponse
}

func newStubEvaluationRepo(qs *stubQuestionnaireRepo) *stubEvaluationRepo {
	return &stubEvaluationRepo{qs: qs}
}

func (r *stubEvaluationRepo) Insert(_ context.Context, resp *domain.EvaluationResponse) (*domain.EvaluationResponse, error) {
	r.seq++
	created := *resp
	created.ID = fmt.Sprintf("e%d", r.seq)
	r.responses = append(r.responses, &created)
	clone := created
	return &clone, nil
}

func (r *stubEvaluationRepo) ListByDepartment(_ context.Context, departmentID string) ([]*domain.EvaluationResponse, error) {
	out := []*domain.EvaluationResponse{}
	for _, resp := range r.responses {
		q, ok := r.qs.qs[resp.QuestionnaireID]
		if ok && q.DepartmentID == departmentID {
			clone := *resp
			out = append(out, &clone)
		}
	}
	return out, nil
}

// --- active questionnaire cache ---

type stubActiveCache struct {
	cached      *domain.Questionnaire
	invalidated int
}

func (c *stubActiveCache) Get(context.Context) (*domain.Questionnaire, error) {
	return c.cached, nil
}

func (c *stubActiveCache) Set(_ context.Context, q *domain.Questionnaire) error {
	c.cached = q
	return nil
}

func (c *stubActiveCache) Invalidate(context.Context) error {
	c.cached = nil
	c.invalidated++
	return nil
}
