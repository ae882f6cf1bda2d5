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
	"github.com/zsyio/api/internal/repositories"
)

var (
	// ErrContactNameRequired is returned when the name field is empty.
	ErrContactNameRequired = errors.New("contact: name is required")
	// ErrContactEmailInvalid is returned for missing or malformed email addresses.
	ErrContactEmailInvalid = errors.New("contact: valid email is required")
	// ErrContactMessageRequired is returned when the message field is empty.
	ErrContactMessageRequired = errors.New("contact: message is required")
)

// ContactService persists contact submissions and sends the notification and
// auto-reply emails.
type ContactService struct {
	repo   repositories.ContactRepository
	mailer outbox.Mailer
	cfg    config.MailConfig
	logger *zap.Logger
	clock  func() time.Time
}

// ContactServiceDeps lists the dependencies for NewContactService.
type ContactServiceDeps struct {
	Repo   repositories.ContactRepository
	Mailer outbox.Mailer
	Mail   config.MailConfig
	Logger *zap.Logger
	Clock  func() time.Time
}

// NewContactService wires the contact service.
func NewContactService(deps ContactServiceDeps) (*ContactService, error) {
	if deps.Repo == nil {
		return nil, errors.New("contact: repository is required")
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
	return &ContactService{
		repo:   deps.Repo,
		mailer: mailer,
		cfg:    deps.Mail,
		logger: logger,
		clock:  wrapped,
	}, nil
}

// Submit validates and stores a contact submission, then sends the admin
// notification and the user auto-reply. Mail failures are logged only; the
// submission succeeds regardless.
func (s *ContactService) Submit(ctx context.Context, submission domain.ContactSubmission) (domain.ContactSubmission, error) {
	submission.Name = strings.TrimSpace(submission.Name)
	submission.Email = strings.TrimSpace(submission.Email)
	submission.Message = strings.TrimSpace(submission.Message)

	if submission.Name == "" {
		return domain.ContactSubmission{}, ErrContactNameRequired
	}
	if _, err := mail.ParseAddress(submission.Email); err != nil {
		return domain.ContactSubmission{}, ErrContactEmailInvalid
	}
	if submission.Message == "" {
		return domain.ContactSubmission{}, ErrContactMessageRequired
	}

	submission.CreatedAt = s.clock()
	created, err := s.repo.Create(ctx, submission)
	if err != nil {
		return domain.ContactSubmission{}, fmt.Errorf("contact: create submission: %w", err)
	}

	s.sendNotifications(ctx, created)
	return created, nil
}

// List returns every submission, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	submissions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("contact: list submissions: %w", err)
	}
	return submissions, nil
}

func (s *ContactService) sendNotifications(ctx context.Context, submission domain.ContactSubmission) {
	fromEmail := s.cfg.FromEmail
	if fromEmail == "" {
		fromEmail = "onboarding@resend.dev"
	}
	adminEmail := s.cfg.AdminEmail
	if adminEmail == "" {
		adminEmail = "contact@zsyio.com"
	}

	name := outbox.EscapeUserContent(submission.Name)
	email := outbox.EscapeUserContent(submission.Email)
	message := outbox.EscapeUserContent(submission.Message)

	adminMsg := outbox.Message{
		From:    fmt.Sprintf("Zsyio Contact <%s>", fromEmail),
		To:      []string{adminEmail},
		Subject: fmt.Sprintf("New Contact Form Submission from %s", submission.Name),
		HTML: fmt.Sprintf("<p><strong>Name:</strong> %s<br><strong>Email:</strong> %s<br><strong>Message:</strong> %s</p>",
			name, email, message),
		ReplyTo: submission.Email,
	}
	if err := s.mailer.Send(ctx, adminMsg); err != nil {
		s.logger.Warn("contact admin notification failed", zap.Error(err))
	}

	replyMsg := outbox.Message{
		From:    fmt.Sprintf("Zsyio Team <%s>", fromEmail),
		To:      []string{submission.Email},
		Subject: "We received your message - Zsyio",
		HTML:    fmt.Sprintf("<p>Hi %s,</p><p>We have received your message and will get back to you shortly.</p>", name),
	}
	if err := s.mailer.Send(ctx, replyMsg); err != nil {
		s.logger.Warn("contact auto-reply failed", zap.Error(err))
	}
}
