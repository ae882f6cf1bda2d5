package repositories

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/zsyio/api/internal/domain"
	fs "github.com/zsyio/api/internal/platform/firestore"
)

type colorRepository struct {
	palettes *fs.BaseRepository[domain.ColorPalette]
	schemes  *fs.BaseRepository[domain.ColorScheme]
	custom   *fs.BaseRepository[domain.CustomColor]
}

// NewColorRepository builds the Firestore-backed color system repository.
func NewColorRepository(provider *fs.Provider) ColorRepository {
	return &colorRepository{
		palettes: fs.NewBaseRepository[domain.ColorPalette](provider, collectionColorPalettes, nil, nil),
		schemes:  fs.NewBaseRepository[domain.ColorScheme](provider, collectionColorSchemes, nil, nil),
		custom:   fs.NewBaseRepository[domain.CustomColor](provider, collectionCustomColors, nil, nil),
	}
}

func (r *colorRepository) ListPalettes(ctx context.Context) ([]domain.ColorPalette, error) {
	docs, err := r.palettes.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.OrderBy("created_at", firestore.Asc)
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.ColorPalette, 0, len(docs))
	for _, doc := range docs {
		palette := doc.Data
		palette.ID = doc.ID
		out = append(out, palette)
	}
	return out, nil
}

func (r *colorRepository) GetPalette(ctx context.Context, id string) (domain.ColorPalette, error) {
	doc, err := r.palettes.Get(ctx, id)
	if err != nil {
		return domain.ColorPalette{}, err
	}
	palette := doc.Data
	palette.ID = doc.ID
	return palette, nil
}

func (r *colorRepository) SavePalette(ctx context.Context, palette domain.ColorPalette) (domain.ColorPalette, error) {
	if palette.ID == "" {
		palette.ID = NewID()
	}
	if _, err := r.palettes.Set(ctx, palette.ID, palette); err != nil {
		return domain.ColorPalette{}, err
	}
	return palette, nil
}

func (r *colorRepository) DeletePalette(ctx context.Context, id string) error {
	return r.palettes.Delete(ctx, id)
}

func (r *colorRepository) ListSchemes(ctx context.Context) ([]domain.ColorScheme, error) {
	docs, err := r.schemes.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.OrderBy("created_at", firestore.Asc)
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.ColorScheme, 0, len(docs))
	for _, doc := range docs {
		scheme := doc.Data
		scheme.ID = doc.ID
		out = append(out, scheme)
	}
	return out, nil
}

func (r *colorRepository) SaveScheme(ctx context.Context, scheme domain.ColorScheme) (domain.ColorScheme, error) {
	if scheme.ID == "" {
		scheme.ID = NewID()
	}
	if _, err := r.schemes.Set(ctx, scheme.ID, scheme); err != nil {
		return domain.ColorScheme{}, err
	}
	return scheme, nil
}

func (r *colorRepository) DeleteScheme(ctx context.Context, id string) error {
	return r.schemes.Delete(ctx, id)
}

func (r *colorRepository) ListCustomColors(ctx context.Context) ([]domain.CustomColor, error) {
	docs, err := r.custom.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.OrderBy("created_at", firestore.Asc)
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.CustomColor, 0, len(docs))
	for _, doc := range docs {
		color := doc.Data
		color.ID = doc.ID
		out = append(out, color)
	}
	return out, nil
}

func (r *colorRepository) SaveCustomColor(ctx context.Context, custom domain.CustomColor) (domain.CustomColor, error) {
	if custom.ID == "" {
		custom.ID = NewID()
	}
	if _, err := r.custom.Set(ctx, custom.ID, custom); err != nil {
		return domain.CustomColor{}, err
	}
	return custom, nil
}

func (r *colorRepository) DeleteCustomColor(ctx context.Context, id string) error {
	return r.custom.Delete(ctx, id)
}
