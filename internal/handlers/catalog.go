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

// CatalogHandlers serves the service catalog and the technology stack.
type CatalogHandlers struct {
	catalog *services.CatalogService
	guard   func(http.Handler) http.Handler
}

// NewCatalogHandlers constructs the catalog handlers. A non-nil guard protects
// the mutating endpoints.
func NewCatalogHandlers(catalog *services.CatalogService, guard func(http.Handler) http.Handler) *CatalogHandlers {
	return &CatalogHandlers{catalog: catalog, guard: guard}
}

// Routes wires the /services endpoints onto the provided router. Technologies
// live under /services/technologies to keep the catalog in one group.
func (h *CatalogHandlers) Routes(r chi.Router) {
	r.Get("/", h.listServices)
	r.Get("/combined_list", h.combinedList)
	r.Get("/technologies", h.listTechnologies)
	r.Get("/technologies/categorized", h.categorizedTechnologies)
	r.Get("/technologies/{id}", h.getTechnology)
	r.Get("/{key}", h.getService)

	r.Group(func(g chi.Router) {
		if h.guard != nil {
			g.Use(h.guard)
		}
		g.Post("/", h.createService)
		g.Put("/{key}", h.updateService)
		g.Delete("/{key}", h.deleteService)
		g.Post("/technologies", h.createTechnology)
		g.Put("/technologies/{id}", h.updateTechnology)
		g.Delete("/technologies/{id}", h.deleteTechnology)
	})
}

func (h *CatalogHandlers) listServices(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListServices(r.Context())
	if err != nil {
		writeCatalogError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *CatalogHandlers) combinedList(w http.ResponseWriter, r *http.Request) {
	combined, err := h.catalog.CombinedList(r.Context())
	if err != nil {
		writeCatalogError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, combined)
}

func (h *CatalogHandlers) getService(w http.ResponseWriter, r *http.Request) {
	service, err := h.catalog.GetService(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeCatalogError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, service)
}

func (h *CatalogHandlers) createService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var service domain.Service
	if err := decodeJSON(r, &service); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	created, err := h.catalog.CreateService(ctx, service)
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandlers) updateService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var service domain.Service
	if err := decodeJSON(r, &service); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	updated, err := h.catalog.UpdateService(ctx, chi.URLParam(r, "key"), service)
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *CatalogHandlers) deleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteService(r.Context(), chi.URLParam(r, "key")); err != nil {
		writeCatalogError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (h *CatalogHandlers) listTechnologies(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListTechnologies(r.Context())
	if err != nil {
		writeCatalogError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *CatalogHandlers) categorizedTechnologies(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.catalog.CategorizedTechnologies(r.Context())
	if err != nil {
		writeCatalogError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, grouped)
}

func (h *CatalogHandlers) getTechnology(w http.ResponseWriter, r *http.Request) {
	tech, err := h.catalog.GetTechnology(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeCatalogError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tech)
}

func (h *CatalogHandlers) createTechnology(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var tech domain.Technology
	if err := decodeJSON(r, &tech); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	created, err := h.catalog.CreateTechnology(ctx, tech)
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandlers) updateTechnology(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var tech domain.Technology
	if err := decodeJSON(r, &tech); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	updated, err := h.catalog.UpdateTechnology(ctx, chi.URLParam(r, "id"), tech)
	if err != nil {
		writeCatalogError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *CatalogHandlers) deleteTechnology(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteTechnology(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeCatalogError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func writeCatalogError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrSlugRequired), errors.Is(err, services.ErrNameRequired):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrCatalogNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("not_found", "catalog entry not found", http.StatusNotFound))
	default:
		writeStoreError(ctx, w, err)
	}
}
