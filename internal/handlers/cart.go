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

// CartHandlers serves anonymous guest carts.
type CartHandlers struct {
	carts *services.CartService
}

// NewCartHandlers constructs the cart handlers.
func NewCartHandlers(carts *services.CartService) *CartHandlers {
	return &CartHandlers{carts: carts}
}

// Routes wires the /cart endpoints onto the provided router.
func (h *CartHandlers) Routes(r chi.Router) {
	r.Get("/", h.getByGuest)
	r.Get("/{id}", h.get)
	r.Post("/add_item", h.addItem)
	r.Post("/clear", h.clear)
}

type cartResponse struct {
	domain.Cart
	Total int64 `json:"total"`
}

func newCartResponse(cart domain.Cart) cartResponse {
	return cartResponse{Cart: cart, Total: cart.Total()}
}

func (h *CartHandlers) getByGuest(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetByGuest(r.Context(), guestID(r))
	if err != nil {
		writeCartError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *CartHandlers) get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeCartError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newCartResponse(cart))
}

type addItemRequest struct {
	ServiceSlug string `json:"service_slug"`
	Quantity    int    `json:"quantity"`
}

func (h *CartHandlers) addItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	cart, err := h.carts.AddItem(ctx, guestID(r), req.ServiceSlug, req.Quantity)
	if err != nil {
		writeCartError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *CartHandlers) clear(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Clear(r.Context(), guestID(r))
	if err != nil {
		writeCartError(r.Context(), w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newCartResponse(cart))
}

func writeCartError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrServiceSlugRequired):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrServiceNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("service_not_found", "service not found", http.StatusNotFound))
	case errors.Is(err, services.ErrCartNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("cart_not_found", "cart not found", http.StatusNotFound))
	default:
		writeStoreError(ctx, w, err)
	}
}
