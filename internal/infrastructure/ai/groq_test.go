package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

func TestClient_Ask_Success(t *testing.T) {
	var got chatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected authorization header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  Hello from Buddy.  "}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	reply, err := client.Ask(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if reply != "Hello from Buddy." {
		t.Fatalf("unexpected reply: %q", reply)
	}

	if got.Model != "llama-3.1-8b-instant" {
		t.Fatalf("unexpected model: %q", got.Model)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Content != "say hello" {
		t.Fatalf("unexpected messages: %+v", got.Messages)
	}
	if got.Temperature != 0.4 {
		t.Fatalf("unexpected temperature: %v", got.Temperature)
	}
}

func TestClient_Ask_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"rate limit"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	if _, err := client.Ask(context.Background(), "hi"); !errors.Is(err, domain.ErrAIUpstream) {
		t.Fatalf("expected ErrAIUpstream, got %v", err)
	}
}

func TestClient_Ask_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	if _, err := client.Ask(context.Background(), "hi"); !errors.Is(err, domain.ErrAIUpstream) {
		t.Fatalf("expected ErrAIUpstream, got %v", err)
	}
}

func TestClient_Ask_NotConfigured(t *testing.T) {
	client := NewClient(Config{})

	if _, err := client.Ask(context.Background(), "hi"); !errors.Is(err, domain.ErrAINotConfigured) {
		t.Fatalf("expected ErrAINotConfigured, got %v", err)
	}
}
