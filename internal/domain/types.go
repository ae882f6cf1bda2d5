// Package domain defines the entities persisted by the API together with the
// document normalisation helpers shared by handlers and repositories.
package domain

import "time"

// Project is a portfolio entry shown on the site.
type Project struct {
	ID             string    `firestore:"-" json:"id"`
	Title          string    `firestore:"title" json:"title"`
	Category       string    `firestore:"category" json:"category"`
	Summary        string    `firestore:"summary" json:"summary"`
	Description    string    `firestore:"description" json:"description"`
	ImageURL       string    `firestore:"image_url" json:"image_url"`
	TechStack      []string  `firestore:"tech_stack" json:"tech_stack"`
	Tags           []string  `firestore:"tags" json:"tags"`
	LiveURL        string    `firestore:"live_url" json:"live_url"`
	GithubURL      string    `firestore:"github_url" json:"github_url"`
	Client         string    `firestore:"client" json:"client"`
	Duration       string    `firestore:"duration" json:"duration"`
	CompletionDate string    `firestore:"completion_date" json:"completion_date"`
	Role           string    `firestore:"role" json:"role"`
	Features       []string  `firestore:"features" json:"features"`
	Challenges     string    `firestore:"challenges" json:"challenges"`
	Solutions      string    `firestore:"solutions" json:"solutions"`
	CreatedAt      time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt      time.Time `firestore:"updated_at" json:"updated_at"`
}

// Service is a sellable offering, addressed by slug.
type Service struct {
	ID          string    `firestore:"-" json:"id"`
	Slug        string    `firestore:"slug" json:"slug"`
	Title       string    `firestore:"title" json:"title"`
	Description string    `firestore:"description" json:"description"`
	Icon        string    `firestore:"icon" json:"icon"`
	IconImage   string    `firestore:"icon_image" json:"icon_image"`
	Gradient    string    `firestore:"gradient" json:"gradient"`
	BaseRate    int64     `firestore:"base_rate" json:"base_rate"`
	HourlyRate  int64     `firestore:"hourly_rate" json:"hourly_rate"`
	CreatedAt   time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt   time.Time `firestore:"updated_at" json:"updated_at"`
}

// Technology is a stack entry grouped by category on the services page.
type Technology struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Category  string    `firestore:"category" json:"category"`
	Icon      string    `firestore:"icon" json:"icon"`
	SortOrder int       `firestore:"sort_order" json:"sort_order"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at" json:"updated_at"`
}

// AboutEntry is a block of about-page content.
type AboutEntry struct {
	ID        string    `firestore:"-" json:"id"`
	Title     string    `firestore:"title" json:"title"`
	Content   string    `firestore:"content" json:"content"`
	ImageURL  string    `firestore:"image_url" json:"image_url"`
	Tags      []string  `firestore:"tags" json:"tags"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at" json:"updated_at"`
}

// CartItem is a single line within a cart.
type CartItem struct {
	ServiceSlug  string `firestore:"service_slug" json:"service_slug"`
	ServiceTitle string `firestore:"service_title" json:"service_title"`
	UnitPrice    int64  `firestore:"unit_price" json:"unit_price"`
	Quantity     int    `firestore:"quantity" json:"quantity"`
}

// Cart collects service items for an anonymous guest session.
type Cart struct {
	ID        string     `firestore:"-" json:"id"`
	GuestID   string     `firestore:"guest_id" json:"guest_id"`
	Items     []CartItem `firestore:"items" json:"items"`
	CreatedAt time.Time  `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time  `firestore:"updated_at" json:"updated_at"`
}

// Total returns the cart total across all items.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// ThemePreference stores a visitor's theme selection keyed by session.
type ThemePreference struct {
	ID           string    `firestore:"-" json:"id"`
	SessionID    string    `firestore:"session_id" json:"session_id"`
	ThemeMode    string    `firestore:"theme_mode" json:"theme_mode"`
	PrimaryColor string    `firestore:"primary_color" json:"primary_color"`
	AccentColor  string    `firestore:"accent_color" json:"accent_color"`
	CreatedAt    time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt    time.Time `firestore:"updated_at" json:"updated_at"`
}

// GlobalThemeConfig is the singleton site-wide theme document.
type GlobalThemeConfig struct {
	DefaultTheme           string    `firestore:"default_theme" json:"default_theme"`
	AllowUserCustomization bool      `firestore:"allow_user_customization" json:"allow_user_customization"`
	BrandPrimary           string    `firestore:"brand_primary" json:"brand_primary"`
	BrandSecondary         string    `firestore:"brand_secondary" json:"brand_secondary"`
	BrandAccent            string    `firestore:"brand_accent" json:"brand_accent"`
	UpdatedAt              time.Time `firestore:"updated_at" json:"updated_at"`
}

// ColorPalette is a named set of colors, at most one marked default.
type ColorPalette struct {
	ID        string            `firestore:"-" json:"id"`
	Name      string            `firestore:"name" json:"name"`
	Colors    map[string]string `firestore:"colors" json:"colors"`
	IsActive  bool              `firestore:"is_active" json:"is_active"`
	IsDefault bool              `firestore:"is_default" json:"is_default"`
	CreatedAt time.Time         `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time         `firestore:"updated_at" json:"updated_at"`
}

// ColorScheme binds palette values to a theme type ("light"/"dark").
type ColorScheme struct {
	ID        string            `firestore:"-" json:"id"`
	Name      string            `firestore:"name" json:"name"`
	ThemeType string            `firestore:"theme_type" json:"theme_type"`
	IsActive  bool              `firestore:"is_active" json:"is_active"`
	Colors    map[string]string `firestore:"colors" json:"colors"`
	CreatedAt time.Time         `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time         `firestore:"updated_at" json:"updated_at"`
}

// CustomColor is a fine-grained color binding exposed as a CSS variable.
type CustomColor struct {
	ID          string    `firestore:"-" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Category    string    `firestore:"category" json:"category"`
	ColorValue  string    `firestore:"color_value" json:"color_value"`
	HoverColor  string    `firestore:"hover_color" json:"hover_color"`
	CSSVariable string    `firestore:"css_variable" json:"css_variable"`
	IsActive    bool      `firestore:"is_active" json:"is_active"`
	CreatedAt   time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt   time.Time `firestore:"updated_at" json:"updated_at"`
}

// SiteConfig is the singleton document holding site-level settings.
type SiteConfig struct {
	SiteName     string    `firestore:"site_name" json:"site_name"`
	SiteTagline  string    `firestore:"site_tagline" json:"site_tagline"`
	ContactEmail string    `firestore:"contact_email" json:"contact_email"`
	UpdatedAt    time.Time `firestore:"updated_at" json:"updated_at"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID           string    `firestore:"-" json:"id"`
	Email        string    `firestore:"email" json:"email"`
	SubscribedAt time.Time `firestore:"subscribed_at" json:"subscribed_at"`
}

// ContactSubmission is a contact-form message.
type ContactSubmission struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Subject   string    `firestore:"subject" json:"subject"`
	Message   string    `firestore:"message" json:"message"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
}

// ChatMessage records a chatbot exchange: the visitor prompt and the model reply.
type ChatMessage struct {
	ID        string    `firestore:"-" json:"id"`
	SessionID string    `firestore:"session_id" json:"session_id"`
	Prompt    string    `firestore:"prompt" json:"prompt"`
	Reply     string    `firestore:"reply" json:"reply"`
	Model     string    `firestore:"model" json:"model"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
}

// User is an admin account allowed to obtain JWTs.
type User struct {
	ID           string    `firestore:"-" json:"id"`
	Email        string    `firestore:"email" json:"email"`
	PasswordHash string    `firestore:"password_hash" json:"-"`
	CreatedAt    time.Time `firestore:"created_at" json:"created_at"`
}
