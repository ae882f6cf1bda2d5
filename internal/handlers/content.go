package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zsyio/api/internal/domain"
	"github.com/zsyio/api/internal/platform/httpx"
	"github.com/zsyio/api/internal/services"
)

var projectStructuredFields = []string{"tech_stack", "tags", "features"}

// ProjectHandlers serves CRUD for portfolio projects.
type ProjectHandlers struct {
	projects *services.ProjectService
	guard    func(http.Handler) http.Handler
}

// NewProjectHandlers constructs the project handlers. A non-nil guard protects
// the mutating endpoints.
func NewProjectHandlers(projects *services.ProjectService, guard func(http.Handler) http.Handler) *ProjectHandlers {
	return &ProjectHandlers{projects: projects, guard: guard}
}

// Routes wires the /projects endpoints onto the provided router.
func (h *ProjectHandlers) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Group(func(g chi.Router) {
		if h.guard != nil {
			g.Use(h.guard)
		}
		g.Post("/", h.create)
		g.Put("/{id}", h.update)
		g.Delete("/{id}", h.delete)
	})
}

func (h *ProjectHandlers) list(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		writeContentError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandlers) get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeContentError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, project)
}

func (h *ProjectHandlers) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	values, err := readSubmission(r, projectStructuredFields)
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	created, err := h.projects.Create(ctx, projectFromSubmission(values))
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *ProjectHandlers) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	values, err := readSubmission(r, projectStructuredFields)
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	updated, err := h.projects.Update(ctx, chi.URLParam(r, "id"), projectFromSubmission(values))
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *ProjectHandlers) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeContentError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// AboutHandlers serves CRUD for about-page entries.
type AboutHandlers struct {
	about *services.AboutService
	guard func(http.Handler) http.Handler
}

// NewAboutHandlers constructs the about handlers.
func NewAboutHandlers(about *services.AboutService, guard func(http.Handler) http.Handler) *AboutHandlers {
	return &AboutHandlers{about: about, guard: guard}
}

// Routes wires the /about endpoints onto the provided router.
func (h *AboutHandlers) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Group(func(g chi.Router) {
		if h.guard != nil {
			g.Use(h.guard)
		}
		g.Post("/", h.create)
		g.Put("/{id}", h.update)
		g.Delete("/{id}", h.delete)
	})
}

func (h *AboutHandlers) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.about.List(r.Context())
	if err != nil {
		writeContentError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, entries)
}

func (h *AboutHandlers) get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.about.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeContentError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, entry)
}

func (h *AboutHandlers) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	values, err := readSubmission(r, []string{"tags"})
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	created, err := h.about.Create(ctx, aboutFromSubmission(values))
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *AboutHandlers) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	values, err := readSubmission(r, []string{"tags"})
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	updated, err := h.about.Update(ctx, chi.URLParam(r, "id"), aboutFromSubmission(values))
	if err != nil {
		writeContentError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *AboutHandlers) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.about.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeContentError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// readSubmission decodes a JSON or form body into a normalised submission map.
// Multipart and urlencoded forms arrive as url.Values; JSON bodies arrive as
// a plain object. Both are folded through the same normaliser.
func readSubmission(r *http.Request, structured []string) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	switch {
	case contentType == "" || strings.HasPrefix(contentType, "application/json"):
		var values map[string]any
		if err := decodeJSON(r, &values); err != nil {
			return nil, err
		}
		return domain.DecodeSubmission(values, structured), nil
	default:
		if err := r.ParseMultipartForm(maxBodySize); err != nil && err != http.ErrNotMultipart {
			return nil, err
		}
		if r.Form == nil {
			if err := r.ParseForm(); err != nil {
				return nil, err
			}
		}
		values := make(map[string]any, len(r.Form))
		for key, vals := range r.Form {
			values[key] = vals
		}
		return domain.DecodeSubmission(values, structured), nil
	}
}

func projectFromSubmission(values map[string]any) domain.Project {
	return domain.Project{
		Title:          stringValue(values, "title"),
		Category:       stringValue(values, "category"),
		Summary:        stringValue(values, "summary"),
		Description:    stringValue(values, "description"),
		ImageURL:       stringValue(values, "image_url"),
		TechStack:      domain.StringSlice(values["tech_stack"]),
		Tags:           domain.StringSlice(values["tags"]),
		LiveURL:        stringValue(values, "live_url"),
		GithubURL:      stringValue(values, "github_url"),
		Client:         stringValue(values, "client"),
		Duration:       stringValue(values, "duration"),
		CompletionDate: stringValue(values, "completion_date"),
		Role:           stringValue(values, "role"),
		Features:       domain.StringSlice(values["features"]),
		Challenges:     stringValue(values, "challenges"),
		Solutions:      stringValue(values, "solutions"),
	}
}

func aboutFromSubmission(values map[string]any) domain.AboutEntry {
	return domain.AboutEntry{
		Title:    stringValue(values, "title"),
		Content:  stringValue(values, "content"),
		ImageURL: stringValue(values, "image_url"),
		Tags:     domain.StringSlice(values["tags"]),
	}
}

func stringValue(values map[string]any, key string) string {
	if s, ok := values[key].(string); ok {
		return s
	}
	return ""
}

func writeContentError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrContentNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("not_found", "content not found", http.StatusNotFound))
	default:
		writeStoreError(ctx, w, err)
	}
}
