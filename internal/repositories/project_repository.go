package repositories

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/zsyio/api/internal/domain"
	fs "github.com/zsyio/api/internal/platform/firestore"
)

type projectRepository struct {
	base *fs.BaseRepository[domain.Project]
}

// NewProjectRepository builds the Firestore-backed project repository.
func NewProjectRepository(provider *fs.Provider) ProjectRepository {
	return &projectRepository{
		base: fs.NewBaseRepository[domain.Project](provider, collectionProjects, nil, nil),
	}
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.OrderBy("created_at", firestore.Desc)
	})
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		project := doc.Data
		project.ID = doc.ID
		projects = append(projects, project)
	}
	return projects, nil
}

func (r *projectRepository) Get(ctx context.Context, id string) (domain.Project, error) {
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	project := doc.Data
	project.ID = doc.ID
	return project, nil
}

func (r *projectRepository) Create(ctx context.Context, project domain.Project) (domain.Project, error) {
	id := NewID()
	if _, err := r.base.Set(ctx, id, project); err != nil {
		return domain.Project{}, err
	}
	project.ID = id
	return project, nil
}

func (r *projectRepository) Update(ctx context.Context, id string, project domain.Project) (domain.Project, error) {
	if _, err := r.base.Set(ctx, id, project); err != nil {
		return domain.Project{}, err
	}
	project.ID = id
	return project, nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	return r.base.Delete(ctx, id)
}
