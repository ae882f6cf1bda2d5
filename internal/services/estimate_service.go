// Package services holds the business logic between the HTTP handlers and the
// repositories.
package services

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/zsyio/api/internal/repositories"
)

// BreakdownLine is a single labelled amount within a cost estimate.
type BreakdownLine struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// EstimateResult is the outcome of a pricing calculation.
type EstimateResult struct {
	Total     int64           `json:"estimatedCost"`
	Breakdown []BreakdownLine `json:"breakdown"`
}

// EstimateService computes cost estimates and serves the default parameter
// shapes per service.
type EstimateService struct {
	rules  repositories.EstimationRulesRepository
	logger *zap.Logger
}

// EstimateServiceDeps lists the dependencies for NewEstimateService. The
// rules repository is optional; without it the hardcoded defaults are served.
type EstimateServiceDeps struct {
	Rules  repositories.EstimationRulesRepository
	Logger *zap.Logger
}

// NewEstimateService wires the estimate service.
func NewEstimateService(deps EstimateServiceDeps) *EstimateService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateService{rules: deps.Rules, logger: logger}
}

// DefaultInputs returns the per-service default parameter shapes, preferring a
// stored override document when one exists.
func (s *EstimateService) DefaultInputs(ctx context.Context) map[string]map[string]any {
	if s.rules != nil {
		overrides, found, err := s.rules.Defaults(ctx)
		if err != nil {
			s.logger.Warn("estimation rules read failed, serving hardcoded defaults", zap.Error(err))
		} else if found {
			return overrides
		}
	}
	return defaultInputs()
}

// Estimate calculates the cost for a service. Unknown service ids yield a
// zero total with an empty breakdown. The calculation is pure and never
// errors; missing or malformed parameters fall back to typed defaults.
func (s *EstimateService) Estimate(serviceID string, params map[string]any) EstimateResult {
	result := EstimateResult{Breakdown: []BreakdownLine{}}

	add := func(label string, amount int64) {
		if amount > 0 {
			result.Total += amount
			result.Breakdown = append(result.Breakdown, BreakdownLine{Label: label, Value: amount})
		}
	}

	pages := intParam(params, "pages", 1)

	switch serviceID {
	case "web-designing":
		iterations := intParam(params, "iterations", 1)
		logo := boolParam(params, "logo", false)
		add("Base Design Package", 15000)
		add("Additional Pages ("+itoa(pages)+")", pages*2000)
		add("Design Iterations", maxInt64(1, iterations-1)*5000)
		if logo {
			add("Logo Design", 6000)
		}

	case "web-development":
		features := mapParam(params, "features")
		add("Base Development", 50000)
		add("Pages Implementation ("+itoa(pages)+")", pages*5000)
		if boolParam(features, "cms", false) {
			add("CMS Integration", 15000)
		}
		if boolParam(features, "auth", false) {
			add("Authentication System", 14000)
		}
		if boolParam(features, "payments", false) {
			add("Payment Gateway", 20000)
		}

	case "deployment":
		environments := intParam(params, "environments", 1)
		add("Base Setup", 5000)
		add("Environments ("+itoa(environments)+")", environments*2500)

	case "company-details":
		add("Base Package", 4000)
		add("Pages Content ("+itoa(pages)+")", pages*1500)

	case "hosting":
		years := intParam(params, "years", 1)
		add("Hosting ("+itoa(years)+" years)", years*5000)

	case "app-development":
		screens := intParam(params, "screens", 5)
		platform := stringParam(params, "platform", "single")
		add("Base App Development", 50000)
		add("Screens ("+itoa(screens)+")", screens*4000)
		if platform == "both" {
			add("Dual Platform (iOS + Android)", 12000)
		}

	case "logo-designing":
		concepts := intParam(params, "concepts", 1)
		revisions := intParam(params, "revisions", 2)
		add("Base Logo Package", 6000)
		add("Concepts ("+itoa(concepts)+")", concepts*2000)
		if extra := maxInt64(0, revisions-2); extra > 0 {
			add("Extra Revisions ("+itoa(extra)+")", extra*1500)
		}

	case "data-solutions":
		dashboards := intParam(params, "dashboards", 1)
		integrations := intParam(params, "integrations", 0)
		add("Base Data Setup", 18000)
		add("Dashboards ("+itoa(dashboards)+")", dashboards*5000)
		add("Integrations ("+itoa(integrations)+")", integrations*4000)
	}

	return result
}

func defaultInputs() map[string]map[string]any {
	return map[string]map[string]any{
		"web-designing": {
			"pages":      1,
			"iterations": 1,
			"logo":       false,
		},
		"web-development": {
			"pages": 1,
			"features": map[string]any{
				"cms":      false,
				"auth":     false,
				"payments": false,
			},
		},
		"deployment": {
			"environments": 1,
		},
		"company-details": {
			"pages": 1,
		},
		"hosting": {
			"years": 1,
		},
		"app-development": {
			"screens":  5,
			"platform": "single",
		},
		"logo-designing": {
			"concepts":  1,
			"revisions": 2,
		},
		"data-solutions": {
			"dashboards":   1,
			"integrations": 0,
		},
	}
}

func intParam(params map[string]any, key string, fallback int64) int64 {
	if params == nil {
		return fallback
	}
	switch v := params[key].(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case string:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return parsed
		}
		return fallback
	default:
		return fallback
	}
}

func boolParam(params map[string]any, key string, fallback bool) bool {
	if params == nil {
		return fallback
	}
	switch v := params[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
		return fallback
	default:
		return fallback
	}
}

func stringParam(params map[string]any, key, fallback string) string {
	if params == nil {
		return fallback
	}
	if v, ok := params[key].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func mapParam(params map[string]any, key string) map[string]any {
	if params == nil {
		return nil
	}
	if v, ok := params[key].(map[string]any); ok {
		return v
	}
	return nil
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
