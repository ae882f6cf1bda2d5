package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zsyio/api/internal/domain"
	"github.com/zsyio/api/internal/platform/httpx"
	"github.com/zsyio/api/internal/services"
)

// ContactHandlers serves the contact form.
type ContactHandlers struct {
	contact *services.ContactService
	guard   func(http.Handler) http.Handler
}

// NewContactHandlers constructs the contact handlers. A non-nil guard
// protects the submissions listing.
func NewContactHandlers(contact *services.ContactService, guard func(http.Handler) http.Handler) *ContactHandlers {
	return &ContactHandlers{contact: contact, guard: guard}
}

// Routes wires the /contact endpoints onto the provided router.
func (h *ContactHandlers) Routes(r chi.Router) {
	r.Post("/", h.submit)
	r.Group(func(g chi.Router) {
		if h.guard != nil {
			g.Use(h.guard)
		}
		g.Get("/", h.list)
	})
}

func (h *ContactHandlers) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var submission domain.ContactSubmission
	if err := decodeJSON(r, &submission); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	created, err := h.contact.Submit(ctx, submission)
	if err != nil {
		writeContactError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *ContactHandlers) list(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.contact.List(r.Context())
	if err != nil {
		writeContactError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, submissions)
}

func writeContactError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrContactNameRequired),
		errors.Is(err, services.ErrContactEmailInvalid),
		errors.Is(err, services.ErrContactMessageRequired):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	default:
		writeStoreError(ctx, w, err)
	}
}

// NewsletterHandlers serves newsletter signups.
type NewsletterHandlers struct {
	newsletter *services.NewsletterService
}

// NewNewsletterHandlers constructs the newsletter handlers.
func NewNewsletterHandlers(newsletter *services.NewsletterService) *NewsletterHandlers {
	return &NewsletterHandlers{newsletter: newsletter}
}

// Routes wires the /newsletter endpoints onto the provided router.
func (h *NewsletterHandlers) Routes(r chi.Router) {
	r.Get("/", h.ping)
	r.Post("/subscribe", h.subscribe)
}

func (h *NewsletterHandlers) ping(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"message":   "Newsletter app reloaded successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"app":       "newsletter",
	})
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (h *NewsletterHandlers) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req subscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	sub, err := h.newsletter.Subscribe(ctx, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubscriberEmailInvalid), errors.Is(err, services.ErrAlreadySubscribed):
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		default:
			writeStoreError(ctx, w, err)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sub)
}
