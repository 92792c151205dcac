package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/sublease-service/internal/api/http"
	"github.com/spec-kit/sublease-service/internal/api/http/handlers"
	"github.com/spec-kit/sublease-service/internal/auth"
	"github.com/spec-kit/sublease-service/internal/config"
	"github.com/spec-kit/sublease-service/internal/events"
	"github.com/spec-kit/sublease-service/internal/extraction"
	"github.com/spec-kit/sublease-service/internal/mail"
	"github.com/spec-kit/sublease-service/internal/observability"
	"github.com/spec-kit/sublease-service/internal/persistence"
	"github.com/spec-kit/sublease-service/internal/repository"
	"github.com/spec-kit/sublease-service/internal/service"
	"github.com/spec-kit/sublease-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	// The pool carries the elevated service credentials; it is handed to the
	// repositories only, never held as ambient state elsewhere.
	pool := pg.PoolHandle()
	profileRepo := repository.NewProfileRepository(pool)
	agencyRepo := repository.NewAgencyRepository(pool)
	listingRepo := repository.NewListingRepository(pool)
	requestRepo := repository.NewRequestRepository(pool)

	var verifier auth.TokenVerifier
	if cfg.Session.JWTSecret != "" {
		verifier = auth.NewJWTVerifier(cfg.Session.JWTSecret)
	} else {
		verifier = auth.NewSessionStoreVerifier(cfg.Session, redis.Client, logger)
	}
	admins := auth.NewAdminList(cfg.Admin.Emails)
	authMiddleware := auth.NewMiddleware(verifier, admins)

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	var sender mail.Sender
	if sesSender, err := mail.NewSESSender(ctx, cfg.Email); err != nil {
		logger.Warn("email provider unavailable", zap.Error(err))
	} else {
		sender = sesSender
	}

	profileService := service.NewProfileService(service.ProfileDependencies{
		Verifier:    verifier,
		Admins:      admins,
		ProfileRepo: profileRepo,
		Dispatcher:  dispatcher,
	})
	agencyService := service.NewAgencyService(service.AgencyDependencies{
		Verifier:   verifier,
		Admins:     admins,
		AgencyRepo: agencyRepo,
		Dispatcher: dispatcher,
	})
	listingService := service.NewListingService(service.ListingDependencies{
		Verifier:    verifier,
		Admins:      admins,
		AgencyRepo:  agencyRepo,
		ListingRepo: listingRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	requestService := service.NewRequestService(requestRepo, dispatcher)
	notificationService := service.NewNotificationService(sender, profileRepo, dispatcher, logger, cfg.Email)
	extractionClient := extraction.NewClient(cfg.Extraction, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Profiles:       handlers.NewProfilesHandler(profileService),
		Agencies:       handlers.NewAgenciesHandler(agencyService),
		Listings:       handlers.NewListingsHandler(listingService),
		Admin:          handlers.NewAdminHandler(profileService, agencyService, notificationService),
		Requests:       handlers.NewRequestsHandler(requestService),
		Extraction:     handlers.NewExtractionHandler(extractionClient),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
