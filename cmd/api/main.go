package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/zsyio/api/internal/chat"
	"github.com/zsyio/api/internal/handlers"
	"github.com/zsyio/api/internal/mail"
	"github.com/zsyio/api/internal/platform/auth"
	"github.com/zsyio/api/internal/platform/config"
	pfirestore "github.com/zsyio/api/internal/platform/firestore"
	"github.com/zsyio/api/internal/platform/observability"
	"github.com/zsyio/api/internal/repositories"
	"github.com/zsyio/api/internal/services"
)

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	firestoreProvider := pfirestore.NewProvider(cfg.Firestore)
	firestoreClient, err := firestoreProvider.Client(ctx)
	if err != nil {
		logger.Fatal("failed to initialise firestore client", zap.Error(err))
	}
	defer func() {
		if err := firestoreProvider.Close(); err != nil {
			logger.Warn("firestore close error", zap.Error(err))
		}
	}()

	store := repositories.NewStore(firestoreProvider)

	var audit services.AuditLogger = services.NoopAuditLogger{}
	if cfg.Features.EnableAuditLog {
		audit = services.NewAuditLogService(services.AuditLogServiceDeps{
			Repo:   store.AuditLogs,
			Logger: logger.Named("audit"),
		})
	}

	var mailer mail.Mailer = mail.NoopMailer{}
	if cfg.Features.EnableMail && cfg.Mail.APIKey != "" {
		resend, err := mail.NewResendMailer(cfg.Mail)
		if err != nil {
			logger.Fatal("failed to initialise mailer", zap.Error(err))
		}
		mailer = resend
	} else {
		logger.Info("mail disabled; outbound email will be dropped")
	}

	estimateService := services.NewEstimateService(services.EstimateServiceDeps{
		Rules:  store.EstimationRules,
		Logger: logger.Named("estimate"),
	})
	projectService, err := services.NewProjectService(services.ProjectServiceDeps{
		Repo:   store.Projects,
		Logger: logger.Named("projects"),
	})
	if err != nil {
		logger.Fatal("failed to initialise project service", zap.Error(err))
	}
	aboutService, err := services.NewAboutService(services.AboutServiceDeps{
		Repo:   store.About,
		Logger: logger.Named("about"),
	})
	if err != nil {
		logger.Fatal("failed to initialise about service", zap.Error(err))
	}
	catalogService, err := services.NewCatalogService(services.CatalogServiceDeps{
		Services:     store.Services,
		Technologies: store.Technologies,
		Logger:       logger.Named("catalog"),
	})
	if err != nil {
		logger.Fatal("failed to initialise catalog service", zap.Error(err))
	}
	cartService, err := services.NewCartService(services.CartServiceDeps{
		Carts:    store.Carts,
		Services: store.Services,
		Logger:   logger.Named("cart"),
	})
	if err != nil {
		logger.Fatal("failed to initialise cart service", zap.Error(err))
	}
	themeService, err := services.NewThemeService(services.ThemeServiceDeps{
		Prefs:  store.ThemePrefs,
		Global: store.GlobalTheme,
		Logger: logger.Named("theme"),
	})
	if err != nil {
		logger.Fatal("failed to initialise theme service", zap.Error(err))
	}
	colorService, err := services.NewColorService(services.ColorServiceDeps{
		Repo:   store.Colors,
		Logger: logger.Named("colors"),
	})
	if err != nil {
		logger.Fatal("failed to initialise color service", zap.Error(err))
	}
	configService, err := services.NewConfigService(services.ConfigServiceDeps{
		Repo:   store.SiteConfig,
		Audit:  audit,
		Logger: logger.Named("config"),
	})
	if err != nil {
		logger.Fatal("failed to initialise config service", zap.Error(err))
	}
	contactService, err := services.NewContactService(services.ContactServiceDeps{
		Repo:   store.Contact,
		Mailer: mailer,
		Mail:   cfg.Mail,
		Logger: logger.Named("contact"),
	})
	if err != nil {
		logger.Fatal("failed to initialise contact service", zap.Error(err))
	}
	newsletterService, err := services.NewNewsletterService(services.NewsletterServiceDeps{
		Repo:   store.Subscribers,
		Audit:  audit,
		Mailer: mailer,
		Mail:   cfg.Mail,
		Logger: logger.Named("newsletter"),
	})
	if err != nil {
		logger.Fatal("failed to initialise newsletter service", zap.Error(err))
	}

	opts := []handlers.Option{
		handlers.WithMiddlewares(
			observability.InjectLoggerMiddleware(logger.Named("http")),
			observability.TraceMiddleware(),
			observability.RecoveryMiddleware(logger.Named("http")),
			observability.RequestLoggerMiddleware(),
		),
		handlers.WithHealthHandlers(handlers.NewHealthHandlers(firestoreCheck(ctx, firestoreClient))),
	}

	var guard func(http.Handler) http.Handler
	if cfg.Auth.SigningSecret != "" {
		tokenService, err := auth.NewTokenService(cfg.Auth, nil)
		if err != nil {
			logger.Fatal("failed to initialise token service", zap.Error(err))
		}
		guard = auth.RequireAuth(tokenService)

		authService, err := services.NewAuthService(services.AuthServiceDeps{
			Users:         store.Users,
			Tokens:        tokenService,
			AllowedEmails: cfg.Auth.AllowedEmails,
			Logger:        logger.Named("auth"),
		})
		if err != nil {
			logger.Fatal("failed to initialise auth service", zap.Error(err))
		}
		opts = append(opts, handlers.WithLoginRoutes(handlers.NewLoginHandlers(authService).Routes))
	} else {
		logger.Warn("auth signing secret not configured; login routes disabled and admin endpoints left open")
	}

	opts = append(opts,
		handlers.WithEstimateRoutes(handlers.NewEstimateHandlers(estimateService, audit).Routes),
		handlers.WithProjectRoutes(handlers.NewProjectHandlers(projectService, guard).Routes),
		handlers.WithServiceRoutes(handlers.NewCatalogHandlers(catalogService, guard).Routes),
		handlers.WithAboutRoutes(handlers.NewAboutHandlers(aboutService, guard).Routes),
		handlers.WithCartRoutes(handlers.NewCartHandlers(cartService).Routes),
		handlers.WithThemeRoutes(handlers.NewThemeHandlers(themeService, guard).Routes),
		handlers.WithColorRoutes(handlers.NewColorHandlers(colorService, guard).Routes),
		handlers.WithConfigRoutes(handlers.NewConfigHandlers(configService, guard).Routes),
		handlers.WithContactRoutes(handlers.NewContactHandlers(contactService, guard).Routes),
		handlers.WithNewsletterRoutes(handlers.NewNewsletterHandlers(newsletterService).Routes),
	)

	if cfg.Chat.APIKey != "" {
		chatClient, err := chat.NewClient(cfg.Chat)
		if err != nil {
			logger.Fatal("failed to initialise chat client", zap.Error(err))
		}
		chatService, err := services.NewChatService(services.ChatServiceDeps{
			Completer: chatClient,
			Messages:  store.ChatMessages,
			Logger:    logger.Named("chat"),
		})
		if err != nil {
			logger.Fatal("failed to initialise chat service", zap.Error(err))
		}
		opts = append(opts, handlers.WithChatbotRoutes(handlers.NewChatbotHandlers(chatService).Routes))
	} else {
		logger.Info("chat api key not configured; chatbot routes disabled")
	}

	router := handlers.NewRouter(opts...)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("zsyio api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// firestoreCheck probes the store by listing collections with a short timeout.
func firestoreCheck(ctx context.Context, client *firestore.Client) handlers.ReadinessCheck {
	return func() error {
		checkCtx, cancel := context.WithTimeout(ctx, 1500*time.Millisecond)
		defer cancel()
		iter := client.Collections(checkCtx)
		if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
			return err
		}
		return nil
	}
}
