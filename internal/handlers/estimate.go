package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zsyio/api/internal/platform/httpx"
	"github.com/zsyio/api/internal/services"
)

// EstimateHandlers serves cost estimation and the default parameter shapes.
type EstimateHandlers struct {
	estimates *services.EstimateService
	audit     services.AuditLogger
}

// NewEstimateHandlers constructs the estimate handlers.
func NewEstimateHandlers(estimates *services.EstimateService, audit services.AuditLogger) *EstimateHandlers {
	if audit == nil {
		audit = services.NoopAuditLogger{}
	}
	return &EstimateHandlers{estimates: estimates, audit: audit}
}

// Routes wires the /estimate endpoints onto the provided router.
func (h *EstimateHandlers) Routes(r chi.Router) {
	r.Post("/", h.estimate)
	r.Get("/rules", h.rules)
}

type estimateRequest struct {
	ServiceID string         `json:"serviceId"`
	Params    map[string]any `json:"params"`
}

func (h *EstimateHandlers) estimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req estimateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBodyError(ctx, w, err)
		return
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "serviceId is required", http.StatusBadRequest))
		return
	}

	result := h.estimates.Estimate(req.ServiceID, req.Params)

	h.audit.Log(ctx, "estimations", map[string]any{
		"service_id":     req.ServiceID,
		"params":         req.Params,
		"estimated_cost": result.Total,
	})

	httpx.WriteJSON(w, http.StatusOK, result)
}

func (h *EstimateHandlers) rules(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.estimates.DefaultInputs(r.Context()))
}
