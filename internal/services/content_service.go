package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zsyio/api/internal/domain"
	fs "github.com/zsyio/api/internal/platform/firestore"
	"github.com/zsyio/api/internal/repositories"
)

var (
	// ErrTitleRequired is returned when content is created without a title.
	ErrTitleRequired = errors.New("content: title is required")
	// ErrContentNotFound is returned when a content lookup misses.
	ErrContentNotFound = errors.New("content: not found")
)

// ProjectService manages portfolio projects.
type ProjectService struct {
	repo   repositories.ProjectRepository
	logger *zap.Logger
	clock  func() time.Time
}

// ProjectServiceDeps lists the dependencies for NewProjectService.
type ProjectServiceDeps struct {
	Repo   repositories.ProjectRepository
	Logger *zap.Logger
	Clock  func() time.Time
}

// NewProjectService wires the project service.
func NewProjectService(deps ProjectServiceDeps) (*ProjectService, error) {
	if deps.Repo == nil {
		return nil, errors.New("content: project repository is required")
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
	return &ProjectService{repo: deps.Repo, logger: logger, clock: wrapped}, nil
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("content: list projects: %w", err)
	}
	return projects, nil
}

// Get returns a single project.
func (s *ProjectService) Get(ctx context.Context, id string) (domain.Project, error) {
	project, err := s.repo.Get(ctx, id)
	if fs.IsNotFound(err) {
		return domain.Project{}, ErrContentNotFound
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("content: get project: %w", err)
	}
	return project, nil
}

// Create validates and stores a new project.
func (s *ProjectService) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	if strings.TrimSpace(project.Title) == "" {
		return domain.Project{}, ErrTitleRequired
	}
	now := s.clock()
	project.CreatedAt = now
	project.UpdatedAt = now

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return domain.Project{}, fmt.Errorf("content: create project: %w", err)
	}
	return created, nil
}

// Update replaces an existing project, preserving its creation time.
func (s *ProjectService) Update(ctx context.Context, id string, project domain.Project) (domain.Project, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if strings.TrimSpace(project.Title) == "" {
		return domain.Project{}, ErrTitleRequired
	}

	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = s.clock()

	updated, err := s.repo.Update(ctx, id, project)
	if err != nil {
		return domain.Project{}, fmt.Errorf("content: update project: %w", err)
	}
	return updated, nil
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("content: delete project: %w", err)
	}
	return nil
}

// AboutService manages about-page entries.
type AboutService struct {
	repo   repositories.AboutRepository
	logger *zap.Logger
	clock  func() time.Time
}

// AboutServiceDeps lists the dependencies for NewAboutService.
type AboutServiceDeps struct {
	Repo   repositories.AboutRepository
	Logger *zap.Logger
	Clock  func() time.Time
}

// NewAboutService wires the about service.
func NewAboutService(deps AboutServiceDeps) (*AboutService, error) {
	if deps.Repo == nil {
		return nil, errors.New("content: about repository is required")
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
	return &AboutService{repo: deps.Repo, logger: logger, clock: wrapped}, nil
}

// List returns all about entries, newest first.
func (s *AboutService) List(ctx context.Context) ([]domain.AboutEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("content: list about entries: %w", err)
	}
	return entries, nil
}

// Get returns a single about entry.
func (s *AboutService) Get(ctx context.Context, id string) (domain.AboutEntry, error) {
	entry, err := s.repo.Get(ctx, id)
	if fs.IsNotFound(err) {
		return domain.AboutEntry{}, ErrContentNotFound
	}
	if err != nil {
		return domain.AboutEntry{}, fmt.Errorf("content: get about entry: %w", err)
	}
	return entry, nil
}

// Create validates and stores a new about entry.
func (s *AboutService) Create(ctx context.Context, entry domain.AboutEntry) (domain.AboutEntry, error) {
	if strings.TrimSpace(entry.Title) == "" {
		return domain.AboutEntry{}, ErrTitleRequired
	}
	now := s.clock()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return domain.AboutEntry{}, fmt.Errorf("content: create about entry: %w", err)
	}
	return created, nil
}

// Update replaces an existing about entry.
func (s *AboutService) Update(ctx context.Context, id string, entry domain.AboutEntry) (domain.AboutEntry, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return domain.AboutEntry{}, err
	}
	if strings.TrimSpace(entry.Title) == "" {
		return domain.AboutEntry{}, ErrTitleRequired
	}

	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = s.clock()

	updated, err := s.repo.Update(ctx, id, entry)
	if err != nil {
		return domain.AboutEntry{}, fmt.Errorf("content: update about entry: %w", err)
	}
	return updated, nil
}

// Delete removes an about entry.
func (s *AboutService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("content: delete about entry: %w", err)
	}
	return nil
}
