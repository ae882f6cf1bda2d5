package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zsyio/api/internal/platform/config"
)

func TestResendMailerSend(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer server.Close()

	mailer, err := NewResendMailer(config.MailConfig{APIKey: "re_test", Endpoint: server.URL})
	if err != nil {
		t.Fatalf("NewResendMailer returned error: %v", err)
	}

	msg := Message{
		From:    "onboarding@resend.dev",
		To:      []string{"contact@zsyio.com"},
		Subject: "New inquiry",
		HTML:    "<p>hello</p>",
		ReplyTo: "user@example.com",
	}
	if err := mailer.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if gotAuth != "Bearer re_test" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotBody["subject"] != "New inquiry" {
		t.Fatalf("subject = %v", gotBody["subject"])
	}
	if gotBody["reply_to"] != "user@example.com" {
		t.Fatalf("reply_to = %v", gotBody["reply_to"])
	}
}

func TestResendMailerSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	mailer, err := NewResendMailer(config.MailConfig{APIKey: "re_test", Endpoint: server.URL})
	if err != nil {
		t.Fatalf("NewResendMailer returned error: %v", err)
	}

	msg := Message{From: "bad", To: []string{"a@b.c"}, Subject: "x", HTML: "<p>x</p>"}
	if err := mailer.Send(context.Background(), msg); err == nil {
		t.Fatalf("expected error for 4xx response")
	}
}

func TestNewResendMailerRequiresAPIKey(t *testing.T) {
	if _, err := NewResendMailer(config.MailConfig{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestEscapeUserContent(t *testing.T) {
	got := EscapeUserContent(`Hello <b>world</b>`)
	if got != "Hello world" {
		t.Fatalf("EscapeUserContent = %q", got)
	}
}
