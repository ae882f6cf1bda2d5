// Package handlers wires the HTTP surface of the API onto chi.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zsyio/api/internal/platform/httpx"
)

// RouteRegistrar registers a set of routes against the provided router.
type RouteRegistrar func(r chi.Router)

type routerConfig struct {
	basePath    string
	middlewares []func(http.Handler) http.Handler
	health      *HealthHandlers

	estimate   RouteRegistrar
	projects   RouteRegistrar
	services   RouteRegistrar
	about      RouteRegistrar
	cart       RouteRegistrar
	theme      RouteRegistrar
	colors     RouteRegistrar
	config     RouteRegistrar
	contact    RouteRegistrar
	newsletter RouteRegistrar
	chatbot    RouteRegistrar
	login      RouteRegistrar
}

// Option customises the router configuration before construction.
type Option func(*routerConfig)

const (
	defaultAPIPrefix  = "/api"
	defaultTimeout    = 60 * time.Second
	errorNotFoundCode = "route_not_found"
)

// NewRouter constructs the chi router with shared middleware and the expected
// route groups.
func NewRouter(opts ...Option) chi.Router {
	cfg := routerConfig{
		basePath: defaultAPIPrefix,
		middlewares: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Timeout(defaultTimeout),
		},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()

	if cfg.health == nil {
		cfg.health = NewHealthHandlers()
	}

	for _, mw := range cfg.middlewares {
		if mw != nil {
			r.Use(mw)
		}
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError(errorNotFoundCode, fmt.Sprintf("no route for %s", req.URL.Path), http.StatusNotFound))
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError("method_not_allowed", fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path), http.StatusMethodNotAllowed))
	})

	r.Get("/healthz", cfg.health.Healthz)
	r.Get("/readyz", cfg.health.Readyz)

	r.Route(cfg.basePath, func(api chi.Router) {
		mount := func(path string, registrar RouteRegistrar, name string) {
			api.Route(path, func(group chi.Router) {
				if registrar != nil {
					registrar(group)
					return
				}
				registerNotImplemented(group, name)
			})
		}

		mount("/estimate", cfg.estimate, "estimate")
		mount("/projects", cfg.projects, "projects")
		mount("/services", cfg.services, "services")
		mount("/about", cfg.about, "about")
		mount("/cart", cfg.cart, "cart")
		mount("/theme", cfg.theme, "theme")
		mount("/colors", cfg.colors, "colors")
		mount("/config", cfg.config, "config")
		mount("/contact", cfg.contact, "contact")
		mount("/newsletter", cfg.newsletter, "newsletter")
		mount("/chatbot", cfg.chatbot, "chatbot")
		mount("/login", cfg.login, "login")
	})

	return r
}

// WithMiddlewares appends additional global middleware to the router.
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(cfg *routerConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithHealthHandlers overrides the handlers used for the health endpoints.
func WithHealthHandlers(h *HealthHandlers) Option {
	return func(cfg *routerConfig) {
		cfg.health = h
	}
}

// WithEstimateRoutes configures the registrar for cost estimation endpoints.
func WithEstimateRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.estimate = reg
	}
}

// WithProjectRoutes configures the registrar for portfolio project endpoints.
func WithProjectRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.projects = reg
	}
}

// WithServiceRoutes configures the registrar for service catalog endpoints.
func WithServiceRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.services = reg
	}
}

// WithAboutRoutes configures the registrar for about-page endpoints.
func WithAboutRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.about = reg
	}
}

// WithCartRoutes configures the registrar for cart endpoints.
func WithCartRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.cart = reg
	}
}

// WithThemeRoutes configures the registrar for theme preference endpoints.
func WithThemeRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.theme = reg
	}
}

// WithColorRoutes configures the registrar for color management endpoints.
func WithColorRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.colors = reg
	}
}

// WithConfigRoutes configures the registrar for site configuration endpoints.
func WithConfigRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.config = reg
	}
}

// WithContactRoutes configures the registrar for contact form endpoints.
func WithContactRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.contact = reg
	}
}

// WithNewsletterRoutes configures the registrar for newsletter endpoints.
func WithNewsletterRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.newsletter = reg
	}
}

// WithChatbotRoutes configures the registrar for chatbot endpoints.
func WithChatbotRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.chatbot = reg
	}
}

// WithLoginRoutes configures the registrar for authentication endpoints.
func WithLoginRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) {
		cfg.login = reg
	}
}

func registerNotImplemented(r chi.Router, name string) {
	handler := func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError("not_implemented", fmt.Sprintf("%s routes not implemented", name), http.StatusNotImplemented))
	}
	r.HandleFunc("/*", handler)
	r.HandleFunc("/", handler)
	r.NotFound(handler)
	r.MethodNotAllowed(handler)
}
