package repositories

import (
	"strings"

	"github.com/oklog/ulid/v2"

	fs "github.com/zsyio/api/internal/platform/firestore"
)

// Collection names used by the Firestore-backed repositories.
const (
	collectionProjects        = "projects"
	collectionServices        = "services"
	collectionTechnologies    = "technologies"
	collectionAbout           = "about_entries"
	collectionCarts           = "carts"
	collectionThemePrefs      = "theme_preferences"
	collectionTheme           = "theme"
	collectionColorPalettes   = "color_palettes"
	collectionColorSchemes    = "color_schemes"
	collectionCustomColors    = "custom_colors"
	collectionSiteConfig      = "site_config"
	collectionSubscribers     = "subscribers"
	collectionContact         = "contact_submissions"
	collectionChatMessages    = "chat_messages"
	collectionUsers           = "users"
	collectionEstimationRules = "estimation_rules"
)

// Singleton document keys.
const (
	docKeyGlobalTheme = "global"
	docKeySiteConfig  = "config"
)

// NewID mints a lexicographically sortable document identifier.
func NewID() string {
	return strings.ToLower(ulid.Make().String())
}

// Store bundles all Firestore-backed repositories sharing one provider.
type Store struct {
	Projects        ProjectRepository
	Services        ServiceRepository
	Technologies    TechnologyRepository
	About           AboutRepository
	Carts           CartRepository
	ThemePrefs      ThemePreferenceRepository
	GlobalTheme     GlobalThemeRepository
	Colors          ColorRepository
	SiteConfig      SiteConfigRepository
	Subscribers     SubscriberRepository
	Contact         ContactRepository
	ChatMessages    ChatMessageRepository
	Users           UserRepository
	AuditLogs       AuditLogRepository
	EstimationRules EstimationRulesRepository
}

// NewStore wires every repository against the shared provider.
func NewStore(provider *fs.Provider) *Store {
	return &Store{
		Projects:        NewProjectRepository(provider),
		Services:        NewServiceRepository(provider),
		Technologies:    NewTechnologyRepository(provider),
		About:           NewAboutRepository(provider),
		Carts:           NewCartRepository(provider),
		ThemePrefs:      NewThemePreferenceRepository(provider),
		GlobalTheme:     NewGlobalThemeRepository(provider),
		Colors:          NewColorRepository(provider),
		SiteConfig:      NewSiteConfigRepository(provider),
		Subscribers:     NewSubscriberRepository(provider),
		Contact:         NewContactRepository(provider),
		ChatMessages:    NewChatMessageRepository(provider),
		Users:           NewUserRepository(provider),
		AuditLogs:       NewAuditLogRepository(provider),
		EstimationRules: NewEstimationRulesRepository(provider),
	}
}
