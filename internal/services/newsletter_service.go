package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zsyio/api/internal/domain"
	outbox "github.com/zsyio/api/internal/mail"
	"github.com/zsyio/api/internal/platform/config"
	fs "github.com/zsyio/api/internal/platform/firestore"
	"github.com/zsyio/api/internal/repositories"
)

var (
	// ErrSubscriberEmailInvalid is returned for missing or malformed emails.
	ErrSubscriberEmailInvalid = errors.New("newsletter: valid email is required")
	// ErrAlreadySubscribed is returned when the email is already on the list.
	ErrAlreadySubscribed = errors.New("newsletter: email already subscribed")
)

// NewsletterService manages newsletter subscriptions.
type NewsletterService struct {
	repo   repositories.SubscriberRepository
	audit  AuditLogger
	mailer outbox.Mailer
	cfg    config.MailConfig
	logger *zap.Logger
	clock  func() time.Time
}

// NewsletterServiceDeps lists the dependencies for NewNewsletterService.
type NewsletterServiceDeps struct {
	Repo   repositories.SubscriberRepository
	Audit  AuditLogger
	Mailer outbox.Mailer
	Mail   config.MailConfig
	Logger *zap.Logger
	Clock  func() time.Time
}

// NewNewsletterService wires the newsletter service.
func NewNewsletterService(deps NewsletterServiceDeps) (*NewsletterService, error) {
	if deps.Repo == nil {
		return nil, errors.New("newsletter: subscriber repository is required")
	}
	audit := deps.Audit
	if audit == nil {
		audit = NoopAuditLogger{}
	}
	mailer := deps.Mailer
	if mailer == nil {
		mailer = outbox.NoopMailer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	wrapped := func() time.Time { return clock().UTC() }
	return &NewsletterService{
		repo:   deps.Repo,
		audit:  audit,
		mailer: mailer,
		cfg:    deps.Mail,
		logger: logger,
		clock:  wrapped,
	}, nil
}

// Subscribe validates the email, rejects duplicates, persists the subscriber,
// audit-logs the action, and sends the welcome email best-effort.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (domain.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Subscriber{}, ErrSubscriberEmailInvalid
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return domain.Subscriber{}, ErrAlreadySubscribed
	}
	if !fs.IsNotFound(err) {
		return domain.Subscriber{}, fmt.Errorf("newsletter: lookup subscriber: %w", err)
	}

	now := s.clock()
	created, err := s.repo.Create(ctx, domain.Subscriber{Email: email, SubscribedAt: now})
	if err != nil {
		return domain.Subscriber{}, fmt.Errorf("newsletter: create subscriber: %w", err)
	}

	s.audit.Log(ctx, "subscriber_logs", map[string]any{
		"action":     "subscribe",
		"email":      email,
		"created_at": now,
	})

	s.sendWelcome(ctx, email, now.Year())
	return created, nil
}

func (s *NewsletterService) sendWelcome(ctx context.Context, email string, year int) {
	fromEmail := s.cfg.FromEmail
	if fromEmail == "" {
		fromEmail = "onboarding@resend.dev"
	}

	msg := outbox.Message{
		From:    fmt.Sprintf("Zsyio Newsletter <%s>", fromEmail),
		To:      []string{email},
		Subject: "Welcome to Zsyio Newsletter!",
		HTML:    welcomeHTML(year),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("newsletter welcome email failed", zap.Error(err))
	}
}

func welcomeHTML(year int) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #eee; border-radius: 10px; background-color: #f9f9f9;">
  <div style="text-align: center; margin-bottom: 20px;">
    <h1 style="color: #4A90E2; margin: 0;">Zsyio</h1>
  </div>
  <h2 style="color: #333; text-align: center;">Welcome to our Newsletter!</h2>
  <p style="color: #555; line-height: 1.6;">Thank you for subscribing to the <strong>Zsyio</strong> newsletter. We are thrilled to have you with us!</p>
  <p style="color: #555; line-height: 1.6;">You'll be the first to receive updates on our latest projects, industry insights, and special announcements.</p>
  <div style="text-align: center; margin: 30px 0;">
    <a href="https://zsyio.com" style="background-color: #4A90E2; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; font-weight: bold;">Visit Our Website</a>
  </div>
  <hr style="border: 0; border-top: 1px solid #ddd; margin: 20px 0;">
  <p style="font-size: 12px; color: #999; text-align: center;">You received this email because you subscribed on our website. <br> If you did not sign up for this newsletter, please ignore this email.</p>
  <p style="font-size: 12px; color: #999; text-align: center;">&copy; %d Zsyio. All rights reserved.</p>
</div>`, year)
}
