package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "startupambassadors/docs"
	"startupambassadors/internal/adapters/assistant"
	"startupambassadors/internal/adapters/email"
	"startupambassadors/internal/adapters/markdown"
	deliveryhttp "startupambassadors/internal/delivery/http"
	"startupambassadors/internal/delivery/http/controllers"
	"startupambassadors/internal/delivery/http/middleware"
	"startupambassadors/internal/domain"
	"startupambassadors/internal/geo"
	"startupambassadors/internal/repository/postgres"
	"startupambassadors/internal/services"
)

const shutdownTimeout = 10 * time.Second

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply the database schema before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("connected to database")

	if migrateOnStart {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		logger.Info("schema applied")
	}

	handler, err := buildHandler(ctx, db)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 20*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// buildHandler wires repositories, adapters, services and controllers.
func buildHandler(ctx context.Context, db *sql.DB) (http.Handler, error) {
	regions, err := geo.Default()
	if err != nil {
		return nil, err
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return nil, err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	emailService := services.NewEmailService(mailer, renderer, logger)

	var ai domain.Assistant
	if cfg.GeminiAPIKey != "" {
		if ai, err = assistant.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel); err != nil {
			return nil, err
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, assistant disabled")
	}

	timeout := cfg.RequestTimeout
	ambassadorRepo := postgres.NewAmbassadorRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	ambassadorService := services.NewAmbassadorService(ambassadorRepo, regions, timeout)
	mapService := services.NewMapService(ambassadorRepo, regions, timeout)
	eventService := services.NewEventService(postgres.NewEventRepository(db), registrationRepo, regions, emailService, logger, timeout)
	blogService := services.NewBlogService(postgres.NewBlogPostRepository(db), markdown.NewRenderer(), logger, timeout)
	partnerService := services.NewPartnerService(postgres.NewPartnerRepository(db), timeout)
	jobService := services.NewJobListingService(postgres.NewJobListingRepository(db), timeout)
	teamRequestService := services.NewTeamRequestService(postgres.NewTeamRequestRepository(db), emailService, cfg.Email.NotifyAddress, logger, timeout)
	contactService := services.NewContactService(postgres.NewContactSubmissionRepository(db), emailService, cfg.Email.NotifyAddress, logger, timeout)
	assistantService := services.NewAssistantService(ai, timeout+20*time.Second)

	return deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Ambassadors:    controllers.NewAmbassadorController(logger, ambassadorService),
		Map:            controllers.NewMapController(logger, mapService, regions.ViewBox()),
		Events:         controllers.NewEventController(logger, eventService),
		Blog:           controllers.NewBlogController(logger, blogService),
		Partners:       controllers.NewPartnerController(logger, partnerService),
		Jobs:           controllers.NewJobListingController(logger, jobService),
		TeamRequests:   controllers.NewTeamRequestController(logger, teamRequestService),
		Contact:        controllers.NewContactController(logger, contactService),
		Assistant:      controllers.NewAssistantController(logger, assistantService),
		Health:         controllers.NewHealthController(logger, db),
	}), nil
}
