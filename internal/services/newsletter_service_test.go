package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zsyio/api/internal/domain"
	"github.com/zsyio/api/internal/platform/config"
)

func newTestNewsletterService(t *testing.T, repo *stubSubscriberRepository, audit *recordingAuditLogger, mailer *capturingMailer) *NewsletterService {
	t.Helper()
	svc, err := NewNewsletterService(NewsletterServiceDeps{
		Repo:   repo,
		Audit:  audit,
		Mailer: mailer,
		Mail:   config.MailConfig{FromEmail: "onboarding@resend.dev"},
		Clock:  func() time.Time { return time.Date(2025, 8, 15, 14, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("NewNewsletterService returned error: %v", err)
	}
	return svc
}

func TestSubscribePersistsLogsAndMails(t *testing.T) {
	repo := newStubSubscriberRepository()
	audit := &recordingAuditLogger{}
	mailer := &capturingMailer{}
	svc := newTestNewsletterService(t, repo, audit, mailer)

	sub, err := svc.Subscribe(context.Background(), "Reader@Example.com")
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	if sub.Email != "reader@example.com" {
		t.Fatalf("email = %q, want lowercased", sub.Email)
	}
	if len(repo.created) != 1 {
		t.Fatalf("subscribers persisted = %d", len(repo.created))
	}

	if len(audit.entries) != 1 || audit.entries[0].Collection != "subscriber_logs" {
		t.Fatalf("audit entries = %+v", audit.entries)
	}
	if audit.entries[0].Doc["action"] != "subscribe" {
		t.Fatalf("audit doc = %v", audit.entries[0].Doc)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("emails sent = %d", len(mailer.sent))
	}
	welcome := mailer.sent[0]
	if welcome.Subject != "Welcome to Zsyio Newsletter!" {
		t.Fatalf("subject = %q", welcome.Subject)
	}
	if !strings.Contains(welcome.HTML, "2025 Zsyio") {
		t.Fatalf("welcome body missing year: %q", welcome.HTML)
	}
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	repo := newStubSubscriberRepository(domain.Subscriber{ID: "sub-0", Email: "reader@example.com"})
	svc := newTestNewsletterService(t, repo, &recordingAuditLogger{}, &capturingMailer{})

	if _, err := svc.Subscribe(context.Background(), "reader@example.com"); !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestSubscribeInvalidEmail(t *testing.T) {
	svc := newTestNewsletterService(t, newStubSubscriberRepository(), &recordingAuditLogger{}, &capturingMailer{})

	for _, email := range []string{"", "   ", "not-an-email"} {
		if _, err := svc.Subscribe(context.Background(), email); !errors.Is(err, ErrSubscriberEmailInvalid) {
			t.Fatalf("email %q: expected ErrSubscriberEmailInvalid, got %v", email, err)
		}
	}
}

func TestSubscribeSucceedsWhenWelcomeMailFails(t *testing.T) {
	repo := newStubSubscriberRepository()
	mailer := &capturingMailer{fail: errors.New("resend down")}
	svc := newTestNewsletterService(t, repo, &recordingAuditLogger{}, mailer)

	if _, err := svc.Subscribe(context.Background(), "reader@example.com"); err != nil {
		t.Fatalf("Subscribe should succeed when mail fails, got %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("subscriber not persisted")
	}
}
