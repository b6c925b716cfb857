package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

func setupCache(t *testing.T) (*ActiveQuestionnaireCache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewActiveQuestionnaireCache(client), s
}

func TestActiveQuestionnaireCache_MissThenHit(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	got, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("Get on empty cache: %v", err)
	}
	if got != nil {
		t.Fatalf("expected miss, got %+v", got)
	}

	q := &domain.Questionnaire{ID: "q1", Content: `{"questions":["a"]}`, DepartmentID: "d1", IsActive: true}
	if err := cache.Set(ctx, q); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err = cache.Get(ctx)
	if err != nil {
		t.Fatalf("Get after Set: %v", err)
	}
	if got == nil || got.ID != "q1" || got.Content != q.Content {
		t.Fatalf("unexpected cached questionnaire: %+v", got)
	}
}

func TestActiveQuestionnaireCache_Invalidate(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, &domain.Questionnaire{ID: "q1"}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate returned error: %v", err)
	}

	got, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("Get after invalidation: %v", err)
	}
	if got != nil {
		t.Fatalf("expected miss after invalidation, got %+v", got)
	}
}

func TestActiveQuestionnaireCache_TTL(t *testing.T) {
	cache, s := setupCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, &domain.Questionnaire{ID: "q1"}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	s.FastForward(activeTTL + 1)

	got, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("Get after expiry: %v", err)
	}
	if got != nil {
		t.Fatalf("expected entry to expire, got %+v", got)
	}
}

func TestActiveQuestionnaireCache_CorruptEntry(t *testing.T) {
	cache, s := setupCache(t)
	ctx := context.Background()

	if err := s.Set("public:active_questionnaire", "{not json"); err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}

	got, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("Get with corrupt entry: %v", err)
	}
	if got != nil {
		t.Fatalf("corrupt entry must behave like a miss, got %+v", got)
	}
	if s.Exists("public:active_questionnaire") {
		t.Fatalf("corrupt entry should be evicted")
	}
}
