package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zsyio/api/internal/services"
)

func newEstimateRouter(audit services.AuditLogger) http.Handler {
	estimates := services.NewEstimateService(services.EstimateServiceDeps{})
	handlers := NewEstimateHandlers(estimates, audit)
	return NewRouter(WithEstimateRoutes(handlers.Routes))
}

func TestEstimateEndpoint(t *testing.T) {
	audit := &recordingAudit{}
	router := newEstimateRouter(audit)

	body := `{"serviceId":"hosting","params":{"years":2}}`
	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		EstimatedCost int64 `json:"estimatedCost"`
		Breakdown     []struct {
			Label string `json:"label"`
			Value int64  `json:"value"`
		} `json:"breakdown"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.EstimatedCost != 10000 {
		t.Fatalf("estimatedCost = %d, want 10000", resp.EstimatedCost)
	}
	if len(resp.Breakdown) != 1 || resp.Breakdown[0].Label != "Hosting (2 years)" {
		t.Fatalf("breakdown = %+v", resp.Breakdown)
	}

	if len(audit.entries) != 1 || audit.entries[0].Collection != "estimations" {
		t.Fatalf("audit entries = %+v", audit.entries)
	}
	if audit.entries[0].Doc["service_id"] != "hosting" {
		t.Fatalf("audit doc = %v", audit.entries[0].Doc)
	}
}

func TestEstimateRequiresServiceID(t *testing.T) {
	router := newEstimateRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(`{"params":{}}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestEstimateUnknownServiceYieldsZero(t *testing.T) {
	router := newEstimateRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(`{"serviceId":"time-travel"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp struct {
		EstimatedCost int64 `json:"estimatedCost"`
		Breakdown     []any `json:"breakdown"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.EstimatedCost != 0 || len(resp.Breakdown) != 0 {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestEstimateRulesEndpoint(t *testing.T) {
	router := newEstimateRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/estimate/rules", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var rules map[string]map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &rules); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := rules["web-designing"]; !ok {
		t.Fatalf("rules missing web-designing: %v", rules)
	}
}
