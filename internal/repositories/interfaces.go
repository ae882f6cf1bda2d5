// Package repositories defines the persistence interfaces consumed by the
// service layer together with their Firestore implementations.
package repositories

import (
	"context"

	"github.com/zsyio/api/internal/domain"
)

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (domain.Project, error)
	Create(ctx context.Context, project domain.Project) (domain.Project, error)
	Update(ctx context.Context, id string, project domain.Project) (domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// ServiceRepository persists sellable services addressed by slug.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByIDOrSlug(ctx context.Context, key string) (domain.Service, error)
	Create(ctx context.Context, service domain.Service) (domain.Service, error)
	Update(ctx context.Context, id string, service domain.Service) (domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// TechnologyRepository persists technology stack entries.
type TechnologyRepository interface {
	List(ctx context.Context) ([]domain.Technology, error)
	Get(ctx context.Context, id string) (domain.Technology, error)
	Create(ctx context.Context, tech domain.Technology) (domain.Technology, error)
	Update(ctx context.Context, id string, tech domain.Technology) (domain.Technology, error)
	Delete(ctx context.Context, id string) error
}

// AboutRepository persists about-page entries.
type AboutRepository interface {
	List(ctx context.Context) ([]domain.AboutEntry, error)
	Get(ctx context.Context, id string) (domain.AboutEntry, error)
	Create(ctx context.Context, entry domain.AboutEntry) (domain.AboutEntry, error)
	Update(ctx context.Context, id string, entry domain.AboutEntry) (domain.AboutEntry, error)
	Delete(ctx context.Context, id string) error
}

// CartRepository persists guest carts.
type CartRepository interface {
	List(ctx context.Context) ([]domain.Cart, error)
	Get(ctx context.Context, id string) (domain.Cart, error)
	FindByGuestID(ctx context.Context, guestID string) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) (domain.Cart, error)
}

// ThemePreferenceRepository persists per-session theme choices.
type ThemePreferenceRepository interface {
	FindBySession(ctx context.Context, sessionID string) (domain.ThemePreference, error)
	Save(ctx context.Context, pref domain.ThemePreference) (domain.ThemePreference, error)
}

// GlobalThemeRepository stores the singleton global theme document.
type GlobalThemeRepository interface {
	Get(ctx context.Context) (domain.GlobalThemeConfig, error)
	Set(ctx context.Context, cfg domain.GlobalThemeConfig) error
}

// ColorRepository persists palettes, schemes, and custom colors.
type ColorRepository interface {
	ListPalettes(ctx context.Context) ([]domain.ColorPalette, error)
	GetPalette(ctx context.Context, id string) (domain.ColorPalette, error)
	SavePalette(ctx context.Context, palette domain.ColorPalette) (domain.ColorPalette, error)
	DeletePalette(ctx context.Context, id string) error

	ListSchemes(ctx context.Context) ([]domain.ColorScheme, error)
	SaveScheme(ctx context.Context, scheme domain.ColorScheme) (domain.ColorScheme, error)
	DeleteScheme(ctx context.Context, id string) error

	ListCustomColors(ctx context.Context) ([]domain.CustomColor, error)
	SaveCustomColor(ctx context.Context, custom domain.CustomColor) (domain.CustomColor, error)
	DeleteCustomColor(ctx context.Context, id string) error
}

// SiteConfigRepository stores the singleton site configuration document.
type SiteConfigRepository interface {
	Get(ctx context.Context) (domain.SiteConfig, error)
	Set(ctx context.Context, cfg domain.SiteConfig) error
}

// SubscriberRepository persists newsletter subscribers.
type SubscriberRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.Subscriber, error)
	Create(ctx context.Context, sub domain.Subscriber) (domain.Subscriber, error)
}

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, submission domain.ContactSubmission) (domain.ContactSubmission, error)
	List(ctx context.Context) ([]domain.ContactSubmission, error)
}

// ChatMessageRepository persists chatbot exchanges.
type ChatMessageRepository interface {
	Create(ctx context.Context, msg domain.ChatMessage) (domain.ChatMessage, error)
}

// UserRepository looks up admin accounts for login.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// AuditLogRepository appends documents into arbitrary log collections.
type AuditLogRepository interface {
	Insert(ctx context.Context, collection string, doc map[string]any) error
}

// EstimationRulesRepository reads pricing default overrides from the store.
type EstimationRulesRepository interface {
	Defaults(ctx context.Context) (map[string]map[string]any, bool, error)
}
