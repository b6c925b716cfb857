package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/univeval/evaluation-system/internal/core/domain"
	"github.com/univeval/evaluation-system/internal/core/ports"
)

type stubDepartmentService struct {
	createOrGetFn func(ctx context.Context, name string) (*domain.Department, error)
	listFn        func(ctx context.Context) ([]ports.DepartmentSummary, error)
	assignHeadFn  func(ctx context.Context, departmentID, username string) error
	removeHeadFn  func(ctx context.Context, departmentID string) error
	deleteFn      func(ctx context.Context, departmentID string) error
}

func (s *stubDepartmentService) CreateOrGet(ctx context.Context, name string) (*domain.Department, error) {
	return s.createOrGetFn(ctx, name)
}

func (s *stubDepartmentService) List(ctx context.Context) ([]ports.DepartmentSummary, error) {
	return s.listFn(ctx)
}

func (s *stubDepartmentService) AssignHead(ctx context.Context, departmentID, username string) error {
	return s.assignHeadFn(ctx, departmentID, username)
}

func (s *stubDepartmentService) RemoveHead(ctx context.Context, departmentID string) error {
	return s.removeHeadFn(ctx, departmentID)
}

func (s *stubDepartmentService) Delete(ctx context.Context, departmentID string) error {
	return s.deleteFn(ctx, departmentID)
}

func TestDepartmentHandler_Create(t *testing.T) {
	stub := &stubDepartmentService{
		createOrGetFn: func(_ context.Context, name string) (*domain.Department, error) {
			if name != "Library" {
				t.Fatalf("unexpected name: %q", name)
			}
			return &domain.Department{ID: "d1", Name: "Library"}, nil
		},
	}
	h := NewDepartmentHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/departments", `{"name":"Library"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "d1" || resp["name"] != "Library" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestDepartmentHandler_List(t *testing.T) {
	stub := &stubDepartmentService{
		listFn: func(context.Context) ([]ports.DepartmentSummary, error) {
			return []ports.DepartmentSummary{
				{ID: "d1", Name: "Library", HeadName: "hector"},
				{ID: "d2", Name: "Registrar"},
			}, nil
		},
	}
	h := NewDepartmentHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/departments", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(resp))
	}
	if resp[0]["head_name"] != "hector" {
		t.Fatalf("head name missing: %+v", resp[0])
	}
	if _, present := resp[1]["head_name"]; present {
		t.Fatalf("empty head name should be omitted: %+v", resp[1])
	}
}

func TestDepartmentHandler_AssignHead(t *testing.T) {
	var gotDept, gotUser string
	stub := &stubDepartmentService{
		assignHeadFn: func(_ context.Context, departmentID, username string) error {
			gotDept, gotUser = departmentID, username
			return nil
		},
	}
	h := NewDepartmentHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/departments/d1/assign-head", `{"username":"hector"}`)
	c.SetParamNames("id")
	c.SetParamValues("d1")

	if err := h.AssignHead(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotDept != "d1" || gotUser != "hector" {
		t.Fatalf("unexpected call: dept=%s user=%s", gotDept, gotUser)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Head assigned" {
		t.Fatalf("unexpected message: %+v", resp)
	}
}

func TestDepartmentHandler_RemoveHead_NoneAssigned(t *testing.T) {
	stub := &stubDepartmentService{
		removeHeadFn: func(context.Context, string) error {
			return domain.ErrHeadNotAssigned
		},
	}
	h := NewDepartmentHandler(stub)

	c, _ := newTestContext(http.MethodPut, "/departments/d1/remove-head", "")
	c.SetParamNames("id")
	c.SetParamValues("d1")

	if err := h.RemoveHead(c); !errors.Is(err, domain.ErrHeadNotAssigned) {
		t.Fatalf("expected ErrHeadNotAssigned, got %v", err)
	}
}

func TestDepartmentHandler_Delete(t *testing.T) {
	var gotID string
	stub := &stubDepartmentService{
		deleteFn: func(_ context.Context, departmentID string) error {
			gotID = departmentID
			return nil
		},
	}
	h := NewDepartmentHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/departments/d1", "")
	c.SetParamNames("id")
	c.SetParamValues("d1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotID != "d1" {
		t.Fatalf("unexpected id: %s", gotID)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Department deleted" {
		t.Fatalf("unexpected message: %+v", resp)
	}
}
