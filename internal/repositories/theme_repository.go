package repositories

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/zsyio/api/internal/domain"
	fs "github.com/zsyio/api/internal/platform/firestore"
)

type themePreferenceRepository struct {
	base *fs.BaseRepository[domain.ThemePreference]
}

// NewThemePreferenceRepository builds the Firestore-backed theme preference repository.
func NewThemePreferenceRepository(provider *fs.Provider) ThemePreferenceRepository {
	return &themePreferenceRepository{
		base: fs.NewBaseRepository[domain.ThemePreference](provider, collectionThemePrefs, nil, nil),
	}
}

func (r *themePreferenceRepository) FindBySession(ctx context.Context, sessionID string) (domain.ThemePreference, error) {
	doc, err := r.base.QueryOne(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("session_id", "==", sessionID)
	})
	if err != nil {
		return domain.ThemePreference{}, err
	}
	pref := doc.Data
	pref.ID = doc.ID
	return pref, nil
}

func (r *themePreferenceRepository) Save(ctx context.Context, pref domain.ThemePreference) (domain.ThemePreference, error) {
	if pref.ID == "" {
		pref.ID = NewID()
	}
	if _, err := r.base.Set(ctx, pref.ID, pref); err != nil {
		return domain.ThemePreference{}, err
	}
	return pref, nil
}

type globalThemeRepository struct {
	base *fs.BaseRepository[domain.GlobalThemeConfig]
}

// NewGlobalThemeRepository builds the singleton global theme repository.
func NewGlobalThemeRepository(provider *fs.Provider) GlobalThemeRepository {
	return &globalThemeRepository{
		base: fs.NewBaseRepository[domain.GlobalThemeConfig](provider, collectionTheme, nil, nil),
	}
}

func (r *globalThemeRepository) Get(ctx context.Context) (domain.GlobalThemeConfig, error) {
	doc, err := r.base.Get(ctx, docKeyGlobalTheme)
	if err != nil {
		return domain.GlobalThemeConfig{}, err
	}
	return doc.Data, nil
}

func (r *globalThemeRepository) Set(ctx context.Context, cfg domain.GlobalThemeConfig) error {
	_, err := r.base.Set(ctx, docKeyGlobalTheme, cfg)
	return err
}
