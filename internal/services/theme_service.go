package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zsyio/api/internal/domain"
	fs "github.com/zsyio/api/internal/platform/firestore"
	"github.com/zsyio/api/internal/repositories"
)

// Defaults matching the historical site behaviour.
const (
	defaultThemeMode    = "dark"
	defaultPrimaryColor = "#3b82f6"
	defaultAccentColor  = "#8b5cf6"

	defaultBrandPrimary   = "#3b82f6"
	defaultBrandSecondary = "#8b5cf6"
	defaultBrandAccent    = "#ec4899"
)

// ThemePreferenceUpdate carries optional fields for a preference update;
// nil pointers leave the stored value untouched.
type ThemePreferenceUpdate struct {
	ThemeMode    *string
	PrimaryColor *string
	AccentColor  *string
}

// ThemeService manages per-session theme preferences and the global theme.
type ThemeService struct {
	prefs  repositories.ThemePreferenceRepository
	global repositories.GlobalThemeRepository
	logger *zap.Logger
	clock  func() time.Time
}

// ThemeServiceDeps lists the dependencies for NewThemeService.
type ThemeServiceDeps struct {
	Prefs  repositories.ThemePreferenceRepository
	Global repositories.GlobalThemeRepository
	Logger *zap.Logger
	Clock  func() time.Time
}

// NewThemeService wires the theme service.
func NewThemeService(deps ThemeServiceDeps) (*ThemeService, error) {
	if deps.Prefs == nil {
		return nil, errors.New("theme: preference repository is required")
	}
	if deps.Global == nil {
		return nil, errors.New("theme: global repository is required")
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
	return &ThemeService{
		prefs:  deps.Prefs,
		global: deps.Global,
		logger: logger,
		clock:  wrapped,
	}, nil
}

// GetOrCreatePreference returns the session's preference, creating it with
// defaults on first access. An empty session id mints a new guest session.
func (s *ThemeService) GetOrCreatePreference(ctx context.Context, sessionID string) (domain.ThemePreference, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	pref, err := s.prefs.FindBySession(ctx, sessionID)
	if err == nil {
		return pref, nil
	}
	if !fs.IsNotFound(err) {
		return domain.ThemePreference{}, fmt.Errorf("theme: find preference: %w", err)
	}

	now := s.clock()
	pref = domain.ThemePreference{
		SessionID:    sessionID,
		ThemeMode:    defaultThemeMode,
		PrimaryColor: defaultPrimaryColor,
		AccentColor:  defaultAccentColor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	saved, err := s.prefs.Save(ctx, pref)
	if err != nil {
		return domain.ThemePreference{}, fmt.Errorf("theme: create preference: %w", err)
	}
	return saved, nil
}

// UpdatePreference applies the provided fields to the session's preference,
// creating it first when absent.
func (s *ThemeService) UpdatePreference(ctx context.Context, sessionID string, update ThemePreferenceUpdate) (domain.ThemePreference, error) {
	pref, err := s.GetOrCreatePreference(ctx, sessionID)
	if err != nil {
		return domain.ThemePreference{}, err
	}

	if update.ThemeMode != nil {
		pref.ThemeMode = *update.ThemeMode
	}
	if update.PrimaryColor != nil {
		pref.PrimaryColor = *update.PrimaryColor
	}
	if update.AccentColor != nil {
		pref.AccentColor = *update.AccentColor
	}
	pref.UpdatedAt = s.clock()

	saved, err := s.prefs.Save(ctx, pref)
	if err != nil {
		return domain.ThemePreference{}, fmt.Errorf("theme: update preference: %w", err)
	}
	return saved, nil
}

// GlobalTheme returns the singleton global theme config, materialising the
// defaults on first read.
func (s *ThemeService) GlobalTheme(ctx context.Context) (domain.GlobalThemeConfig, error) {
	cfg, err := s.global.Get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !fs.IsNotFound(err) {
		return domain.GlobalThemeConfig{}, fmt.Errorf("theme: get global config: %w", err)
	}

	cfg = domain.GlobalThemeConfig{
		DefaultTheme:           defaultThemeMode,
		AllowUserCustomization: true,
		BrandPrimary:           defaultBrandPrimary,
		BrandSecondary:         defaultBrandSecondary,
		BrandAccent:            defaultBrandAccent,
		UpdatedAt:              s.clock(),
	}
	if err := s.global.Set(ctx, cfg); err != nil {
		return domain.GlobalThemeConfig{}, fmt.Errorf("theme: create global config: %w", err)
	}
	return cfg, nil
}

// UpdateGlobalTheme replaces the singleton global theme config.
func (s *ThemeService) UpdateGlobalTheme(ctx context.Context, cfg domain.GlobalThemeConfig) (domain.GlobalThemeConfig, error) {
	current, err := s.GlobalTheme(ctx)
	if err != nil {
		return domain.GlobalThemeConfig{}, err
	}

	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = current.DefaultTheme
	}
	if cfg.BrandPrimary == "" {
		cfg.BrandPrimary = current.BrandPrimary
	}
	if cfg.BrandSecondary == "" {
		cfg.BrandSecondary = current.BrandSecondary
	}
	if cfg.BrandAccent == "" {
		cfg.BrandAccent = current.BrandAccent
	}
	cfg.UpdatedAt = s.clock()

	if err := s.global.Set(ctx, cfg); err != nil {
		return domain.GlobalThemeConfig{}, fmt.Errorf("theme: update global config: %w", err)
	}
	return cfg, nil
}
