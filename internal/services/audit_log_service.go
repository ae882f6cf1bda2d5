package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zsyio/api/internal/repositories"
)

// AuditLogger records fire-and-forget documents into log collections.
type AuditLogger interface {
	Log(ctx context.Context, collection string, doc map[string]any) bool
}

// AuditLogService writes audit documents to the store. Failures are logged
// and reported through the boolean return; they never propagate as errors.
type AuditLogService struct {
	repo   repositories.AuditLogRepository
	logger *zap.Logger
	clock  func() time.Time
}

// AuditLogServiceDeps lists the dependencies for NewAuditLogService.
type AuditLogServiceDeps struct {
	Repo   repositories.AuditLogRepository
	Logger *zap.Logger
	Clock  func() time.Time
}

// NewAuditLogService wires the audit log service.
func NewAuditLogService(deps AuditLogServiceDeps) *AuditLogService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	wrapped := func() time.Time { return clock().UTC() }
	return &AuditLogService{repo: deps.Repo, logger: logger, clock: wrapped}
}

// Log inserts the document into the named collection, stamping a `timestamp`
// field when the caller did not provide one. Returns whether the insert
// succeeded.
func (s *AuditLogService) Log(ctx context.Context, collection string, doc map[string]any) bool {
	if s == nil || s.repo == nil {
		return false
	}

	if doc == nil {
		doc = map[string]any{}
	}
	if _, exists := doc["timestamp"]; !exists {
		doc["timestamp"] = s.clock()
	}

	if err := s.repo.Insert(ctx, collection, doc); err != nil {
		s.logger.Warn("audit log insert failed",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return false
	}
	return true
}

// NoopAuditLogger satisfies AuditLogger without writing anywhere. Selected
// when audit logging is disabled by feature flag.
type NoopAuditLogger struct{}

// Log implements AuditLogger.
func (NoopAuditLogger) Log(context.Context, string, map[string]any) bool { return true }
