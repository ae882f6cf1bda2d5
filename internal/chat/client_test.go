package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zsyio/api/internal/platform/config"
)

func TestNewClientRoutesByKeyPrefix(t *testing.T) {
	cases := []struct {
		name      string
		apiKey    string
		wantBase  string
		wantModel string
	}{
		{name: "openrouter key", apiKey: "sk-or-v1-abc", wantBase: "https://openrouter.ai/api/v1", wantModel: "google/gemini-flash-1.5-8b"},
		{name: "openai key", apiKey: "sk-abc", wantBase: "https://api.openai.com/v1", wantModel: "gpt-4o"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(config.ChatConfig{APIKey: tc.apiKey})
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			if client.BaseURL() != tc.wantBase {
				t.Fatalf("BaseURL = %q, want %q", client.BaseURL(), tc.wantBase)
			}
			if client.Model() != tc.wantModel {
				t.Fatalf("Model = %q, want %q", client.Model(), tc.wantModel)
			}
		})
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(config.ChatConfig{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestCompleteRoundTrip(t *testing.T) {
	var gotBody completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "We build websites."}},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(config.ChatConfig{APIKey: "sk-test", BaseURL: server.URL, Model: "gpt-4o"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	reply, model, err := client.Complete(context.Background(), "What do you do?")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if reply != "We build websites." {
		t.Fatalf("reply = %q", reply)
	}
	if model != "gpt-4o" {
		t.Fatalf("model = %q", model)
	}

	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v", gotBody.Messages)
	}
	if gotBody.Messages[1].Content != "What do you do?" {
		t.Fatalf("user message = %q", gotBody.Messages[1].Content)
	}
}

func TestCompleteSurfacesUpstreamErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited"},
		})
	}))
	defer server.Close()

	client, err := NewClient(config.ChatConfig{APIKey: "sk-test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, _, err := client.Complete(context.Background(), "hello"); err == nil {
		t.Fatalf("expected upstream error")
	}
}
