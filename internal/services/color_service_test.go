package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zsyio/api/internal/domain"
)

type memoryColorRepository struct {
	palettes map[string]domain.ColorPalette
	schemes  map[string]domain.ColorScheme
	customs  map[string]domain.CustomColor
	nextID   int
}

func newMemoryColorRepository() *memoryColorRepository {
	return &memoryColorRepository{
		palettes: map[string]domain.ColorPalette{},
		schemes:  map[string]domain.ColorScheme{},
		customs:  map[string]domain.CustomColor{},
	}
}

func (r *memoryColorRepository) id(prefix string) string {
	r.nextID++
	return prefix + "-" + string(rune('0'+r.nextID))
}

func (r *memoryColorRepository) ListPalettes(context.Context) ([]domain.ColorPalette, error) {
	out := []domain.ColorPalette{}
	for _, p := range r.palettes {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryColorRepository) GetPalette(_ context.Context, id string) (domain.ColorPalette, error) {
	p, ok := r.palettes[id]
	if !ok {
		return domain.ColorPalette{}, errNotFound()
	}
	return p, nil
}

func (r *memoryColorRepository) SavePalette(_ context.Context, p domain.ColorPalette) (domain.ColorPalette, error) {
	if p.ID == "" {
		p.ID = r.id("palette")
	}
	r.palettes[p.ID] = p
	return p, nil
}

func (r *memoryColorRepository) DeletePalette(_ context.Context, id string) error {
	delete(r.palettes, id)
	return nil
}

func (r *memoryColorRepository) ListSchemes(context.Context) ([]domain.ColorScheme, error) {
	out := []domain.ColorScheme{}
	for _, s := range r.schemes {
		out = append(out, s)
	}
	return out, nil
}

func (r *memoryColorRepository) SaveScheme(_ context.Context, s domain.ColorScheme) (domain.ColorScheme, error) {
	if s.ID == "" {
		s.ID = r.id("scheme")
	}
	r.schemes[s.ID] = s
	return s, nil
}

func (r *memoryColorRepository) DeleteScheme(_ context.Context, id string) error {
	delete(r.schemes, id)
	return nil
}

func (r *memoryColorRepository) ListCustomColors(context.Context) ([]domain.CustomColor, error) {
	out := []domain.CustomColor{}
	for _, c := range r.customs {
		out = append(out, c)
	}
	return out, nil
}

func (r *memoryColorRepository) SaveCustomColor(_ context.Context, c domain.CustomColor) (domain.CustomColor, error) {
	if c.ID == "" {
		c.ID = r.id("color")
	}
	r.customs[c.ID] = c
	return c, nil
}

func (r *memoryColorRepository) DeleteCustomColor(_ context.Context, id string) error {
	delete(r.customs, id)
	return nil
}

func newTestColorService(t *testing.T, repo *memoryColorRepository) *ColorService {
	t.Helper()
	svc, err := NewColorService(ColorServiceDeps{
		Repo:  repo,
		Clock: func() time.Time { return time.Date(2025, 8, 12, 14, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("NewColorService returned error: %v", err)
	}
	return svc
}

func TestSavePaletteClearsOtherDefaults(t *testing.T) {
	repo := newMemoryColorRepository()
	svc := newTestColorService(t, repo)

	first, err := svc.SavePalette(context.Background(), domain.ColorPalette{Name: "Ocean", IsDefault: true})
	if err != nil {
		t.Fatalf("SavePalette returned error: %v", err)
	}
	second, err := svc.SavePalette(context.Background(), domain.ColorPalette{Name: "Sunset", IsDefault: true})
	if err != nil {
		t.Fatalf("SavePalette returned error: %v", err)
	}

	def, err := svc.DefaultPalette(context.Background())
	if err != nil {
		t.Fatalf("DefaultPalette returned error: %v", err)
	}
	if def.ID != second.ID {
		t.Fatalf("default = %q, want %q", def.ID, second.ID)
	}
	if repo.palettes[first.ID].IsDefault {
		t.Fatalf("previous default flag should be cleared")
	}
}

func TestDefaultPaletteMissing(t *testing.T) {
	svc := newTestColorService(t, newMemoryColorRepository())

	if _, err := svc.DefaultPalette(context.Background()); !errors.Is(err, ErrNoDefaultPalette) {
		t.Fatalf("expected ErrNoDefaultPalette, got %v", err)
	}
}

func TestActivePalettesFiltersInactive(t *testing.T) {
	repo := newMemoryColorRepository()
	svc := newTestColorService(t, repo)

	if _, err := svc.SavePalette(context.Background(), domain.ColorPalette{Name: "Live", IsActive: true}); err != nil {
		t.Fatalf("SavePalette returned error: %v", err)
	}
	if _, err := svc.SavePalette(context.Background(), domain.ColorPalette{Name: "Draft"}); err != nil {
		t.Fatalf("SavePalette returned error: %v", err)
	}

	active, err := svc.ActivePalettes(context.Background())
	if err != nil {
		t.Fatalf("ActivePalettes returned error: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Live" {
		t.Fatalf("active = %+v", active)
	}
}

func TestSchemesByThemeDefaultsToLight(t *testing.T) {
	repo := newMemoryColorRepository()
	svc := newTestColorService(t, repo)

	seed := []domain.ColorScheme{
		{Name: "Day", ThemeType: "light", IsActive: true},
		{Name: "Night", ThemeType: "dark", IsActive: true},
		{Name: "Retired", ThemeType: "light"},
	}
	for _, scheme := range seed {
		if _, err := svc.SaveScheme(context.Background(), scheme); err != nil {
			t.Fatalf("SaveScheme returned error: %v", err)
		}
	}

	light, err := svc.SchemesByTheme(context.Background(), "")
	if err != nil {
		t.Fatalf("SchemesByTheme returned error: %v", err)
	}
	if len(light) != 1 || light[0].Name != "Day" {
		t.Fatalf("light schemes = %+v", light)
	}

	dark, err := svc.SchemesByTheme(context.Background(), "dark")
	if err != nil {
		t.Fatalf("SchemesByTheme returned error: %v", err)
	}
	if len(dark) != 1 || dark[0].Name != "Night" {
		t.Fatalf("dark schemes = %+v", dark)
	}
}

func TestCSSVariablesOnlyActiveColors(t *testing.T) {
	repo := newMemoryColorRepository()
	svc := newTestColorService(t, repo)

	seed := []domain.CustomColor{
		{Name: "Primary", CSSVariable: "--color-primary", ColorValue: "#3b82f6", IsActive: true},
		{Name: "Retired", CSSVariable: "--color-old", ColorValue: "#000000"},
		{Name: "Unnamed", ColorValue: "#ffffff", IsActive: true},
	}
	for _, color := range seed {
		if _, err := svc.SaveCustomColor(context.Background(), color); err != nil {
			t.Fatalf("SaveCustomColor returned error: %v", err)
		}
	}

	vars, err := svc.CSSVariables(context.Background())
	if err != nil {
		t.Fatalf("CSSVariables returned error: %v", err)
	}
	if len(vars) != 1 {
		t.Fatalf("vars = %+v", vars)
	}
	if vars["--color-primary"]["value"] != "#3b82f6" {
		t.Fatalf("primary = %+v", vars["--color-primary"])
	}
}

func TestSavePaletteRequiresName(t *testing.T) {
	svc := newTestColorService(t, newMemoryColorRepository())

	if _, err := svc.SavePalette(context.Background(), domain.ColorPalette{}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}
