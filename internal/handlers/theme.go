package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zsyio/api/internal/domain"
	"github.com/zsyio/api/internal/platform/httpx"
	"github.com/zsyio/api/internal/services"
)

// ThemeHandlers serves per-session theme preferences and the global theme.
type ThemeHandlers struct {
	themes *services.ThemeService
	guard  func(http.Handler) http.Handler
}

// NewThemeHandlers constructs the theme handlers. A non-nil guard protects
// the global theme update.
func NewThemeHandlers(themes *services.ThemeService, guard func(http.Handler) http.Handler) *ThemeHandlers {
	return &ThemeHandlers{themes: themes, guard: guard}
}

// Routes wires the /theme endpoints onto the provided router.
func (h *ThemeHandlers) Routes(r chi.Router) {
	r.Get("/", h.getPreference)
	r.Post("/", h.updatePreference)
	r.Get("/global", h.globalTheme)
	r.Group(func(g chi.Router) {
		if h.guard != nil {
			g.Use(h.guard)
		}
		g.Put("/global", h.updateGlobalTheme)
	})
}

// sessionID resolves the theme session from header or cookie.
func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	if cookie, err := r.Cookie("session_id"); err == nil {
		return cookie.Value
	}
	return ""
}

func (h *ThemeHandlers) getPreference(w http.ResponseWriter, r *http.Request) {
	pref, err := h.themes.GetOrCreatePreference(r.Context(), sessionID(r))
	if err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pref)
}

type themePreferenceRequest struct {
	ThemeMode    *string `json:"theme_mode"`
	PrimaryColor *string `json:"primary_color"`
	AccentColor  *string `json:"accent_color"`
}

func (h *ThemeHandlers) updatePreference(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req themePreferenceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	pref, err := h.themes.UpdatePreference(ctx, sessionID(r), services.ThemePreferenceUpdate{
		ThemeMode:    req.ThemeMode,
		PrimaryColor: req.PrimaryColor,
		AccentColor:  req.AccentColor,
	})
	if err != nil {
		writeStoreError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pref)
}

func (h *ThemeHandlers) globalTheme(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.themes.GlobalTheme(r.Context())
	if err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cfg)
}

func (h *ThemeHandlers) updateGlobalTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var cfg domain.GlobalThemeConfig
	if err := decodeJSON(r, &cfg); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	updated, err := h.themes.UpdateGlobalTheme(ctx, cfg)
	if err != nil {
		writeStoreError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}
