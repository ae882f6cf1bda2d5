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
	// ErrColorNotFound is returned when a color lookup misses.
	ErrColorNotFound = errors.New("colors: not found")
	// ErrNoDefaultPalette is returned when no palette is flagged default.
	ErrNoDefaultPalette = errors.New("colors: no default palette")
)

// ColorService manages palettes, schemes, and custom colors.
type ColorService struct {
	repo   repositories.ColorRepository
	logger *zap.Logger
	clock  func() time.Time
}

// ColorServiceDeps lists the dependencies for NewColorService.
type ColorServiceDeps struct {
	Repo   repositories.ColorRepository
	Logger *zap.Logger
	Clock  func() time.Time
}

// NewColorService wires the color service.
func NewColorService(deps ColorServiceDeps) (*ColorService, error) {
	if deps.Repo == nil {
		return nil, errors.New("colors: repository is required")
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
	return &ColorService{repo: deps.Repo, logger: logger, clock: wrapped}, nil
}

// ListPalettes returns every palette.
func (s *ColorService) ListPalettes(ctx context.Context) ([]domain.ColorPalette, error) {
	palettes, err := s.repo.ListPalettes(ctx)
	if err != nil {
		return nil, fmt.Errorf("colors: list palettes: %w", err)
	}
	return palettes, nil
}

// ActivePalettes returns palettes flagged active.
func (s *ColorService) ActivePalettes(ctx context.Context) ([]domain.ColorPalette, error) {
	palettes, err := s.ListPalettes(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.ColorPalette, 0, len(palettes))
	for _, palette := range palettes {
		if palette.IsActive {
			active = append(active, palette)
		}
	}
	return active, nil
}

// DefaultPalette returns the palette flagged default.
func (s *ColorService) DefaultPalette(ctx context.Context) (domain.ColorPalette, error) {
	palettes, err := s.ListPalettes(ctx)
	if err != nil {
		return domain.ColorPalette{}, err
	}
	for _, palette := range palettes {
		if palette.IsDefault {
			return palette, nil
		}
	}
	return domain.ColorPalette{}, ErrNoDefaultPalette
}

// GetPalette returns a single palette.
func (s *ColorService) GetPalette(ctx context.Context, id string) (domain.ColorPalette, error) {
	palette, err := s.repo.GetPalette(ctx, id)
	if fs.IsNotFound(err) {
		return domain.ColorPalette{}, ErrColorNotFound
	}
	if err != nil {
		return domain.ColorPalette{}, fmt.Errorf("colors: get palette: %w", err)
	}
	return palette, nil
}

// SavePalette creates or replaces a palette. Marking a palette default clears
// the flag on every other palette.
func (s *ColorService) SavePalette(ctx context.Context, palette domain.ColorPalette) (domain.ColorPalette, error) {
	if strings.TrimSpace(palette.Name) == "" {
		return domain.ColorPalette{}, ErrNameRequired
	}
	now := s.clock()
	if palette.ID == "" {
		palette.CreatedAt = now
	}
	palette.UpdatedAt = now

	if palette.IsDefault {
		existing, err := s.ListPalettes(ctx)
		if err != nil {
			return domain.ColorPalette{}, err
		}
		for _, other := range existing {
			if other.IsDefault && other.ID != palette.ID {
				other.IsDefault = false
				other.UpdatedAt = now
				if _, err := s.repo.SavePalette(ctx, other); err != nil {
					return domain.ColorPalette{}, fmt.Errorf("colors: clear default flag: %w", err)
				}
			}
		}
	}

	saved, err := s.repo.SavePalette(ctx, palette)
	if err != nil {
		return domain.ColorPalette{}, fmt.Errorf("colors: save palette: %w", err)
	}
	return saved, nil
}

// DeletePalette removes a palette.
func (s *ColorService) DeletePalette(ctx context.Context, id string) error {
	if _, err := s.GetPalette(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeletePalette(ctx, id); err != nil {
		return fmt.Errorf("colors: delete palette: %w", err)
	}
	return nil
}

// ListSchemes returns every color scheme.
func (s *ColorService) ListSchemes(ctx context.Context) ([]domain.ColorScheme, error) {
	schemes, err := s.repo.ListSchemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("colors: list schemes: %w", err)
	}
	return schemes, nil
}

// SchemesByTheme returns active schemes for the given theme type. An empty
// theme type defaults to "light".
func (s *ColorService) SchemesByTheme(ctx context.Context, themeType string) ([]domain.ColorScheme, error) {
	themeType = strings.TrimSpace(themeType)
	if themeType == "" {
		themeType = "light"
	}
	schemes, err := s.ListSchemes(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.ColorScheme, 0, len(schemes))
	for _, scheme := range schemes {
		if scheme.ThemeType == themeType && scheme.IsActive {
			matched = append(matched, scheme)
		}
	}
	return matched, nil
}

// SaveScheme creates or replaces a scheme.
func (s *ColorService) SaveScheme(ctx context.Context, scheme domain.ColorScheme) (domain.ColorScheme, error) {
	if strings.TrimSpace(scheme.Name) == "" {
		return domain.ColorScheme{}, ErrNameRequired
	}
	now := s.clock()
	if scheme.ID == "" {
		scheme.CreatedAt = now
	}
	scheme.UpdatedAt = now

	saved, err := s.repo.SaveScheme(ctx, scheme)
	if err != nil {
		return domain.ColorScheme{}, fmt.Errorf("colors: save scheme: %w", err)
	}
	return saved, nil
}

// DeleteScheme removes a scheme.
func (s *ColorService) DeleteScheme(ctx context.Context, id string) error {
	if err := s.repo.DeleteScheme(ctx, id); err != nil {
		return fmt.Errorf("colors: delete scheme: %w", err)
	}
	return nil
}

// ListCustomColors returns every custom color.
func (s *ColorService) ListCustomColors(ctx context.Context) ([]domain.CustomColor, error) {
	colors, err := s.repo.ListCustomColors(ctx)
	if err != nil {
		return nil, fmt.Errorf("colors: list custom colors: %w", err)
	}
	return colors, nil
}

// CSSVariables maps active custom colors to their CSS variable names.
func (s *ColorService) CSSVariables(ctx context.Context) (map[string]map[string]string, error) {
	colors, err := s.ListCustomColors(ctx)
	if err != nil {
		return nil, err
	}
	vars := make(map[string]map[string]string)
	for _, color := range colors {
		if !color.IsActive || color.CSSVariable == "" {
			continue
		}
		vars[color.CSSVariable] = map[string]string{"value": color.ColorValue}
	}
	return vars, nil
}

// SaveCustomColor creates or replaces a custom color.
func (s *ColorService) SaveCustomColor(ctx context.Context, custom domain.CustomColor) (domain.CustomColor, error) {
	if strings.TrimSpace(custom.Name) == "" {
		return domain.CustomColor{}, ErrNameRequired
	}
	now := s.clock()
	if custom.ID == "" {
		custom.CreatedAt = now
	}
	custom.UpdatedAt = now

	saved, err := s.repo.SaveCustomColor(ctx, custom)
	if err != nil {
		return domain.CustomColor{}, fmt.Errorf("colors: save custom color: %w", err)
	}
	return saved, nil
}

// DeleteCustomColor removes a custom color.
func (s *ColorService) DeleteCustomColor(ctx context.Context, id string) error {
	if err := s.repo.DeleteCustomColor(ctx, id); err != nil {
		return fmt.Errorf("colors: delete custom color: %w", err)
	}
	return nil
}
