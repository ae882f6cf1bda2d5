package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zsyio/api/internal/domain"
	"github.com/zsyio/api/internal/platform/httpx"
	"github.com/zsyio/api/internal/services"
)

// ColorHandlers serves palettes, schemes, and custom colors.
type ColorHandlers struct {
	colors *services.ColorService
	guard  func(http.Handler) http.Handler
}

// NewColorHandlers constructs the color handlers. A non-nil guard protects
// the mutating endpoints.
func NewColorHandlers(colors *services.ColorService, guard func(http.Handler) http.Handler) *ColorHandlers {
	return &ColorHandlers{colors: colors, guard: guard}
}

// Routes wires the /colors endpoints onto the provided router.
func (h *ColorHandlers) Routes(r chi.Router) {
	r.Get("/palettes", h.listPalettes)
	r.Get("/palettes/active", h.activePalettes)
	r.Get("/palettes/default", h.defaultPalette)
	r.Get("/palettes/{id}", h.getPalette)
	r.Get("/schemes", h.listSchemes)
	r.Get("/schemes/by_theme", h.schemesByTheme)
	r.Get("/custom", h.listCustomColors)
	r.Get("/custom/css_variables", h.cssVariables)

	r.Group(func(g chi.Router) {
		if h.guard != nil {
			g.Use(h.guard)
		}
		g.Post("/palettes", h.savePalette)
		g.Delete("/palettes/{id}", h.deletePalette)
		g.Post("/schemes", h.saveScheme)
		g.Delete("/schemes/{id}", h.deleteScheme)
		g.Post("/custom", h.saveCustomColor)
		g.Delete("/custom/{id}", h.deleteCustomColor)
	})
}

func (h *ColorHandlers) listPalettes(w http.ResponseWriter, r *http.Request) {
	palettes, err := h.colors.ListPalettes(r.Context())
	if err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, palettes)
}

func (h *ColorHandlers) activePalettes(w http.ResponseWriter, r *http.Request) {
	palettes, err := h.colors.ActivePalettes(r.Context())
	if err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, palettes)
}

func (h *ColorHandlers) defaultPalette(w http.ResponseWriter, r *http.Request) {
	palette, err := h.colors.DefaultPalette(r.Context())
	if err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, palette)
}

func (h *ColorHandlers) getPalette(w http.ResponseWriter, r *http.Request) {
	palette, err := h.colors.GetPalette(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, palette)
}

func (h *ColorHandlers) savePalette(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var palette domain.ColorPalette
	if err := decodeJSON(r, &palette); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	saved, err := h.colors.SavePalette(ctx, palette)
	if err != nil {
		writeColorError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, saved)
}

func (h *ColorHandlers) deletePalette(w http.ResponseWriter, r *http.Request) {
	if err := h.colors.DeletePalette(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (h *ColorHandlers) listSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.colors.ListSchemes(r.Context())
	if err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, schemes)
}

func (h *ColorHandlers) schemesByTheme(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.colors.SchemesByTheme(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, schemes)
}

func (h *ColorHandlers) saveScheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var scheme domain.ColorScheme
	if err := decodeJSON(r, &scheme); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	saved, err := h.colors.SaveScheme(ctx, scheme)
	if err != nil {
		writeColorError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, saved)
}

func (h *ColorHandlers) deleteScheme(w http.ResponseWriter, r *http.Request) {
	if err := h.colors.DeleteScheme(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (h *ColorHandlers) listCustomColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.colors.ListCustomColors(r.Context())
	if err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, colors)
}

func (h *ColorHandlers) cssVariables(w http.ResponseWriter, r *http.Request) {
	vars, err := h.colors.CSSVariables(r.Context())
	if err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, vars)
}

func (h *ColorHandlers) saveCustomColor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var custom domain.CustomColor
	if err := decodeJSON(r, &custom); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	saved, err := h.colors.SaveCustomColor(ctx, custom)
	if err != nil {
		writeColorError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, saved)
}

func (h *ColorHandlers) deleteCustomColor(w http.ResponseWriter, r *http.Request) {
	if err := h.colors.DeleteCustomColor(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeColorError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func writeColorError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNameRequired):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrColorNotFound), errors.Is(err, services.ErrNoDefaultPalette):
		httpx.WriteError(ctx, w, httpx.NewError("not_found", err.Error(), http.StatusNotFound))
	default:
		writeStoreError(ctx, w, err)
	}
}
