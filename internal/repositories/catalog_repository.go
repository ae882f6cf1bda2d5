package repositories

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/zsyio/api/internal/domain"
	fs "github.com/zsyio/api/internal/platform/firestore"
)

type serviceRepository struct {
	base *fs.BaseRepository[domain.Service]
}

// NewServiceRepository builds the Firestore-backed service repository.
func NewServiceRepository(provider *fs.Provider) ServiceRepository {
	return &serviceRepository{
		base: fs.NewBaseRepository[domain.Service](provider, collectionServices, nil, nil),
	}
}

func (r *serviceRepository) List(ctx context.Context) ([]domain.Service, error) {
	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.OrderBy("created_at", firestore.Asc)
	})
	if err != nil {
		return nil, err
	}
	services := make([]domain.Service, 0, len(docs))
	for _, doc := range docs {
		service := doc.Data
		service.ID = doc.ID
		services = append(services, service)
	}
	return services, nil
}

// GetByIDOrSlug resolves the key as a document id first, then as a slug.
func (r *serviceRepository) GetByIDOrSlug(ctx context.Context, key string) (domain.Service, error) {
	doc, err := r.base.Get(ctx, key)
	if err == nil {
		service := doc.Data
		service.ID = doc.ID
		return service, nil
	}
	if !fs.IsNotFound(err) {
		return domain.Service{}, err
	}

	doc, err = r.base.QueryOne(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("slug", "==", key)
	})
	if err != nil {
		return domain.Service{}, err
	}
	service := doc.Data
	service.ID = doc.ID
	return service, nil
}

func (r *serviceRepository) Create(ctx context.Context, service domain.Service) (domain.Service, error) {
	id := NewID()
	if _, err := r.base.Set(ctx, id, service); err != nil {
		return domain.Service{}, err
	}
	service.ID = id
	return service, nil
}

func (r *serviceRepository) Update(ctx context.Context, id string, service domain.Service) (domain.Service, error) {
	if _, err := r.base.Set(ctx, id, service); err != nil {
		return domain.Service{}, err
	}
	service.ID = id
	return service, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	return r.base.Delete(ctx, id)
}

type technologyRepository struct {
	base *fs.BaseRepository[domain.Technology]
}

// NewTechnologyRepository builds the Firestore-backed technology repository.
func NewTechnologyRepository(provider *fs.Provider) TechnologyRepository {
	return &technologyRepository{
		base: fs.NewBaseRepository[domain.Technology](provider, collectionTechnologies, nil, nil),
	}
}

func (r *technologyRepository) List(ctx context.Context) ([]domain.Technology, error) {
	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.OrderBy("category", firestore.Asc).OrderBy("sort_order", firestore.Asc)
	})
	if err != nil {
		return nil, err
	}
	techs := make([]domain.Technology, 0, len(docs))
	for _, doc := range docs {
		tech := doc.Data
		tech.ID = doc.ID
		techs = append(techs, tech)
	}
	return techs, nil
}

func (r *technologyRepository) Get(ctx context.Context, id string) (domain.Technology, error) {
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		return domain.Technology{}, err
	}
	tech := doc.Data
	tech.ID = doc.ID
	return tech, nil
}

func (r *technologyRepository) Create(ctx context.Context, tech domain.Technology) (domain.Technology, error) {
	id := NewID()
	if _, err := r.base.Set(ctx, id, tech); err != nil {
		return domain.Technology{}, err
	}
	tech.ID = id
	return tech, nil
}

func (r *technologyRepository) Update(ctx context.Context, id string, tech domain.Technology) (domain.Technology, error) {
	if _, err := r.base.Set(ctx, id, tech); err != nil {
		return domain.Technology{}, err
	}
	tech.ID = id
	return tech, nil
}

func (r *technologyRepository) Delete(ctx context.Context, id string) error {
	return r.base.Delete(ctx, id)
}
