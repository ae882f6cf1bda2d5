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
	// ErrSlugRequired is returned when a service is created without a slug.
	ErrSlugRequired = errors.New("catalog: slug is required")
	// ErrNameRequired is returned when a technology is created without a name.
	ErrNameRequired = errors.New("catalog: name is required")
	// ErrCatalogNotFound is returned when a catalog lookup misses.
	ErrCatalogNotFound = errors.New("catalog: not found")
)

// CombinedCatalog bundles services and technologies for the combined list view.
type CombinedCatalog struct {
	Services     []domain.Service    `json:"services"`
	Technologies []domain.Technology `json:"technologies"`
}

// CatalogService manages sellable services and the technology stack.
type CatalogService struct {
	services     repositories.ServiceRepository
	technologies repositories.TechnologyRepository
	logger       *zap.Logger
	clock        func() time.Time
}

// CatalogServiceDeps lists the dependencies for NewCatalogService.
type CatalogServiceDeps struct {
	Services     repositories.ServiceRepository
	Technologies repositories.TechnologyRepository
	Logger       *zap.Logger
	Clock        func() time.Time
}

// NewCatalogService wires the catalog service.
func NewCatalogService(deps CatalogServiceDeps) (*CatalogService, error) {
	if deps.Services == nil {
		return nil, errors.New("catalog: service repository is required")
	}
	if deps.Technologies == nil {
		return nil, errors.New("catalog: technology repository is required")
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
	return &CatalogService{
		services:     deps.Services,
		technologies: deps.Technologies,
		logger:       logger,
		clock:        wrapped,
	}, nil
}

// ListServices returns every service.
func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list services: %w", err)
	}
	return services, nil
}

// GetService resolves a service by document id or slug.
func (s *CatalogService) GetService(ctx context.Context, key string) (domain.Service, error) {
	service, err := s.services.GetByIDOrSlug(ctx, key)
	if fs.IsNotFound(err) {
		return domain.Service{}, ErrCatalogNotFound
	}
	if err != nil {
		return domain.Service{}, fmt.Errorf("catalog: get service: %w", err)
	}
	return service, nil
}

// CreateService validates and stores a new service.
func (s *CatalogService) CreateService(ctx context.Context, service domain.Service) (domain.Service, error) {
	service.Slug = strings.TrimSpace(service.Slug)
	if service.Slug == "" {
		return domain.Service{}, ErrSlugRequired
	}
	now := s.clock()
	service.CreatedAt = now
	service.UpdatedAt = now

	created, err := s.services.Create(ctx, service)
	if err != nil {
		return domain.Service{}, fmt.Errorf("catalog: create service: %w", err)
	}
	return created, nil
}

// UpdateService replaces an existing service resolved by id or slug.
func (s *CatalogService) UpdateService(ctx context.Context, key string, service domain.Service) (domain.Service, error) {
	existing, err := s.GetService(ctx, key)
	if err != nil {
		return domain.Service{}, err
	}
	service.Slug = strings.TrimSpace(service.Slug)
	if service.Slug == "" {
		service.Slug = existing.Slug
	}
	service.CreatedAt = existing.CreatedAt
	service.UpdatedAt = s.clock()

	updated, err := s.services.Update(ctx, existing.ID, service)
	if err != nil {
		return domain.Service{}, fmt.Errorf("catalog: update service: %w", err)
	}
	return updated, nil
}

// DeleteService removes a service resolved by id or slug.
func (s *CatalogService) DeleteService(ctx context.Context, key string) error {
	existing, err := s.GetService(ctx, key)
	if err != nil {
		return err
	}
	if err := s.services.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("catalog: delete service: %w", err)
	}
	return nil
}

// CombinedList returns services together with the technology stack.
func (s *CatalogService) CombinedList(ctx context.Context) (CombinedCatalog, error) {
	services, err := s.ListServices(ctx)
	if err != nil {
		return CombinedCatalog{}, err
	}
	technologies, err := s.ListTechnologies(ctx)
	if err != nil {
		return CombinedCatalog{}, err
	}
	return CombinedCatalog{Services: services, Technologies: technologies}, nil
}

// ListTechnologies returns every technology, ordered by category then sort order.
func (s *CatalogService) ListTechnologies(ctx context.Context) ([]domain.Technology, error) {
	technologies, err := s.technologies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: list technologies: %w", err)
	}
	return technologies, nil
}

// GetTechnology returns a single technology.
func (s *CatalogService) GetTechnology(ctx context.Context, id string) (domain.Technology, error) {
	tech, err := s.technologies.Get(ctx, id)
	if fs.IsNotFound(err) {
		return domain.Technology{}, ErrCatalogNotFound
	}
	if err != nil {
		return domain.Technology{}, fmt.Errorf("catalog: get technology: %w", err)
	}
	return tech, nil
}

// CreateTechnology validates and stores a new technology.
func (s *CatalogService) CreateTechnology(ctx context.Context, tech domain.Technology) (domain.Technology, error) {
	tech.Name = strings.TrimSpace(tech.Name)
	if tech.Name == "" {
		return domain.Technology{}, ErrNameRequired
	}
	now := s.clock()
	tech.CreatedAt = now
	tech.UpdatedAt = now

	created, err := s.technologies.Create(ctx, tech)
	if err != nil {
		return domain.Technology{}, fmt.Errorf("catalog: create technology: %w", err)
	}
	return created, nil
}

// UpdateTechnology replaces an existing technology.
func (s *CatalogService) UpdateTechnology(ctx context.Context, id string, tech domain.Technology) (domain.Technology, error) {
	existing, err := s.GetTechnology(ctx, id)
	if err != nil {
		return domain.Technology{}, err
	}
	tech.Name = strings.TrimSpace(tech.Name)
	if tech.Name == "" {
		return domain.Technology{}, ErrNameRequired
	}
	tech.CreatedAt = existing.CreatedAt
	tech.UpdatedAt = s.clock()

	updated, err := s.technologies.Update(ctx, id, tech)
	if err != nil {
		return domain.Technology{}, fmt.Errorf("catalog: update technology: %w", err)
	}
	return updated, nil
}

// DeleteTechnology removes a technology.
func (s *CatalogService) DeleteTechnology(ctx context.Context, id string) error {
	if _, err := s.GetTechnology(ctx, id); err != nil {
		return err
	}
	if err := s.technologies.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog: delete technology: %w", err)
	}
	return nil
}

// CategorizedTechnologies groups the technology stack by category, keeping
// the repository's category ordering.
func (s *CatalogService) CategorizedTechnologies(ctx context.Context) (map[string][]domain.Technology, error) {
	technologies, err := s.ListTechnologies(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]domain.Technology)
	for _, tech := range technologies {
		category := tech.Category
		if category == "" {
			category = "other"
		}
		grouped[category] = append(grouped[category], tech)
	}
	return grouped, nil
}
