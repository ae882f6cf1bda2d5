package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zsyio/api/internal/domain"
	"github.com/zsyio/api/internal/platform/httpx"
	"github.com/zsyio/api/internal/services"
)

// ConfigHandlers serves the site configuration singleton, the global page
// data, and privacy consent logging.
type ConfigHandlers struct {
	config *services.ConfigService
	guard  func(http.Handler) http.Handler
}

// NewConfigHandlers constructs the config handlers. A non-nil guard protects
// the configuration update.
func NewConfigHandlers(config *services.ConfigService, guard func(http.Handler) http.Handler) *ConfigHandlers {
	return &ConfigHandlers{config: config, guard: guard}
}

// Routes wires the /config endpoints onto the provided router.
func (h *ConfigHandlers) Routes(r chi.Router) {
	r.Get("/", h.siteConfig)
	r.Get("/global-data", h.globalData)
	r.Post("/privacy-consent", h.privacyConsent)
	r.Group(func(g chi.Router) {
		if h.guard != nil {
			g.Use(h.guard)
		}
		g.Put("/", h.updateSiteConfig)
	})
}

func (h *ConfigHandlers) siteConfig(w http.ResponseWriter, r *http.Request) {
	resp, err := h.config.SiteConfig(r.Context())
	if err != nil {
		writeStoreError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *ConfigHandlers) updateSiteConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var cfg domain.SiteConfig
	if err := decodeJSON(r, &cfg); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	updated, err := h.config.UpdateSiteConfig(ctx, cfg)
	if err != nil {
		writeStoreError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *ConfigHandlers) globalData(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.config.GlobalData())
}

type consentRequest struct {
	Status string `json:"status"`
}

func (h *ConfigHandlers) privacyConsent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req consentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	if err := h.config.LogPrivacyConsent(ctx, clientIP(r), req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidConsentStatus) {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
			return
		}
		writeStoreError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"logged": true})
}
