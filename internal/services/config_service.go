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

// ErrInvalidConsentStatus is returned for consent statuses other than
// accepted/rejected.
var ErrInvalidConsentStatus = errors.New("config: invalid consent status")

// SiteConfigResponse is the site config document enriched with the theme
// palette for the frontend.
type SiteConfigResponse struct {
	domain.SiteConfig
	ThemeColors map[string]map[string]string `json:"theme_colors"`
}

// ConfigService serves site-level configuration, global nav/about data, and
// privacy consent logging.
type ConfigService struct {
	repo   repositories.SiteConfigRepository
	audit  AuditLogger
	logger *zap.Logger
	clock  func() time.Time
}

// ConfigServiceDeps lists the dependencies for NewConfigService.
type ConfigServiceDeps struct {
	Repo   repositories.SiteConfigRepository
	Audit  AuditLogger
	Logger *zap.Logger
	Clock  func() time.Time
}

// NewConfigService wires the config service.
func NewConfigService(deps ConfigServiceDeps) (*ConfigService, error) {
	if deps.Repo == nil {
		return nil, errors.New("config: site config repository is required")
	}
	audit := deps.Audit
	if audit == nil {
		audit = NoopAuditLogger{}
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
	return &ConfigService{repo: deps.Repo, audit: audit, logger: logger, clock: wrapped}, nil
}

// SiteConfig returns the singleton config, creating it with defaults on the
// first read, and attaches the hardcoded theme palette.
func (s *ConfigService) SiteConfig(ctx context.Context) (SiteConfigResponse, error) {
	cfg, err := s.repo.Get(ctx)
	if fs.IsNotFound(err) {
		cfg = domain.SiteConfig{
			SiteName:     "Zsyio",
			SiteTagline:  "Innovative Digital Solutions",
			ContactEmail: "contact@zsyio.com",
			UpdatedAt:    s.clock(),
		}
		if err := s.repo.Set(ctx, cfg); err != nil {
			return SiteConfigResponse{}, fmt.Errorf("config: create site config: %w", err)
		}
	} else if err != nil {
		return SiteConfigResponse{}, fmt.Errorf("config: get site config: %w", err)
	}

	return SiteConfigResponse{SiteConfig: cfg, ThemeColors: ThemePalette()}, nil
}

// UpdateSiteConfig replaces the singleton config document.
func (s *ConfigService) UpdateSiteConfig(ctx context.Context, cfg domain.SiteConfig) (domain.SiteConfig, error) {
	cfg.UpdatedAt = s.clock()
	if err := s.repo.Set(ctx, cfg); err != nil {
		return domain.SiteConfig{}, fmt.Errorf("config: update site config: %w", err)
	}
	return cfg, nil
}

// LogPrivacyConsent validates and records a visitor's privacy decision.
// The audit insert is best-effort.
func (s *ConfigService) LogPrivacyConsent(ctx context.Context, ip, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "accepted" && status != "rejected" {
		return ErrInvalidConsentStatus
	}

	s.audit.Log(ctx, "privacy_consents", map[string]any{
		"ip_address": ip,
		"status":     status,
	})
	return nil
}

// GlobalData returns the static navigation and about-page data consumed by
// the frontend shell.
func (s *ConfigService) GlobalData() map[string]any {
	return map[string]any{
		"navLinks": []map[string]any{
			{"title": "Home", "path": "/", "icon": "Home"},
			{"title": "About Us", "path": "/about", "icon": "Info"},
			{"title": "Services", "path": "/services", "icon": "Cpu"},
			{"title": "Projects", "path": "/projects", "icon": "Briefcase"},
			{"title": "Contact", "path": "/contact", "icon": "Mail"},
		},
		"aboutData": map[string]any{
			"stats": map[string]any{
				"studio": []map[string]any{
					{"value": "50+", "label": "Projects Delivered"},
					{"value": "30+", "label": "Happy Clients"},
					{"value": "5+", "label": "Years Experience"},
					{"value": "15+", "label": "Team Members"},
				},
				"meta": []map[string]any{
					{"value": "99%", "label": "Client Satisfaction"},
					{"value": "24/7", "label": "Support Available"},
					{"value": "100%", "label": "On-Time Delivery"},
				},
			},
			"testimonials": []map[string]any{
				{
					"quote": "Zsyio delivered an exceptional product that exceeded our expectations.",
					"name":  "John Doe",
					"role":  "CEO, Tech Corp",
				},
			},
			"techStack": []map[string]any{
				{"title": "Frontend", "items": []string{"React", "Vue.js", "Next.js"}},
				{"title": "Backend", "items": []string{"Node.js", "Python", "Django"}},
			},
			"whyPartner": map[string]any{
				"reasons": []map[string]any{
					{
						"title":       "Expert Team",
						"description": "Our team consists of experienced developers dedicated to your success.",
					},
				},
				"tags": []string{"Innovation", "Quality", "Reliability"},
			},
		},
	}
}

// ThemePalette returns the hardcoded light/dark palette served alongside the
// site config.
func ThemePalette() map[string]map[string]string {
	shared := map[string]string{
		"rosewater": "11 59% 67%",
		"flamingo":  "0 60% 67%",
		"pink":      "316 73% 69%",
		"mauve":     "266 85% 68%",
		"red":       "347 82% 67%",
		"maroon":    "355 56% 52%",
		"peach":     "22 87% 68%",
		"yellow":    "41 86% 67%",
		"green":     "109 57% 73%",
		"teal":      "174 40% 65%",
		"sky":       "197 100% 77%",
		"sapphire":  "199 77% 74%",
		"blue":      "217 92% 76%",
		"lavender":  "259 72% 83%",
	}

	light := map[string]string{
		"text":     "234 16% 15%",
		"subtext1": "233 13% 27%",
		"subtext0": "233 12% 35%",
		"overlay2": "233 14% 43%",
		"overlay1": "233 12% 50%",
		"overlay0": "233 11% 57%",
		"surface2": "233 14% 82%",
		"surface1": "233 14% 88%",
		"surface0": "233 13% 92%",
		"base":     "240 21% 97%",
		"mantle":   "240 21% 99%",
		"crust":    "240 23% 100%",
	}
	dark := map[string]string{
		"text":     "234 16% 92%",
		"subtext1": "233 13% 83%",
		"subtext0": "233 12% 75%",
		"overlay2": "233 14% 67%",
		"overlay1": "233 12% 60%",
		"overlay0": "233 11% 53%",
		"surface2": "233 14% 37%",
		"surface1": "233 14% 30%",
		"surface0": "233 13% 23%",
		"base":     "240 21% 15%",
		"mantle":   "240 21% 12%",
		"crust":    "240 23% 10%",
	}

	for key, value := range shared {
		light[key] = value
		dark[key] = value
	}
	return map[string]map[string]string{"light": light, "dark": dark}
}
