package repositories

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/zsyio/api/internal/domain"
	fs "github.com/zsyio/api/internal/platform/firestore"
)

type aboutRepository struct {
	base *fs.BaseRepository[domain.AboutEntry]
}

// NewAboutRepository builds the Firestore-backed about repository.
func NewAboutRepository(provider *fs.Provider) AboutRepository {
	return &aboutRepository{
		base: fs.NewBaseRepository[domain.AboutEntry](provider, collectionAbout, nil, nil),
	}
}

func (r *aboutRepository) List(ctx context.Context) ([]domain.AboutEntry, error) {
	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.OrderBy("created_at", firestore.Desc)
	})
	if err != nil {
		return nil, err
	}
	entries := make([]domain.AboutEntry, 0, len(docs))
	for _, doc := range docs {
		entry := doc.Data
		entry.ID = doc.ID
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *aboutRepository) Get(ctx context.Context, id string) (domain.AboutEntry, error) {
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		return domain.AboutEntry{}, err
	}
	entry := doc.Data
	entry.ID = doc.ID
	return entry, nil
}

func (r *aboutRepository) Create(ctx context.Context, entry domain.AboutEntry) (domain.AboutEntry, error) {
	id := NewID()
	if _, err := r.base.Set(ctx, id, entry); err != nil {
		return domain.AboutEntry{}, err
	}
	entry.ID = id
	return entry, nil
}

func (r *aboutRepository) Update(ctx context.Context, id string, entry domain.AboutEntry) (domain.AboutEntry, error) {
	if _, err := r.base.Set(ctx, id, entry); err != nil {
		return domain.AboutEntry{}, err
	}
	entry.ID = id
	return entry, nil
}

func (r *aboutRepository) Delete(ctx context.Context, id string) error {
	return r.base.Delete(ctx, id)
}
