package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/geniesugar/geniesugar/internal/alerts"
	"github.com/geniesugar/geniesugar/internal/config"
	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/handlers"
	"github.com/geniesugar/geniesugar/internal/logger"
	"github.com/geniesugar/geniesugar/internal/mailer"
	"github.com/geniesugar/geniesugar/internal/sensor"
	"github.com/geniesugar/geniesugar/internal/server"
	"github.com/geniesugar/geniesugar/internal/services"
	"github.com/geniesugar/geniesugar/internal/session"
	"github.com/geniesugar/geniesugar/internal/tokens"
)

// reminderInterval is how often the background appointment reminder sweep runs.
const reminderInterval = time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		logger.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.Info("Starting GenieSugar server...")

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	logger.Info("Redis connection established")

	// Infrastructure.
	smtpMailer := mailer.New(cfg.SMTP, cfg.Server.AppURL)
	sessions := session.NewStore(redisClient)
	tokenManager := tokens.NewManager(cfg.Auth.TokenSecret)
	dexcomClient := sensor.NewClient(cfg.Dexcom, sensor.NewTokenStore(redisClient))

	// Services.
	userService := services.NewUserService(db)
	glucoseService := services.NewGlucoseService(db)
	foodService := services.NewFoodService(db)
	activityService := services.NewActivityService(db)
	alertSettingsService := services.NewAlertSettingsService(db)
	contactService := services.NewContactService(db)
	careTeamService := services.NewCareTeamService(db)
	appointmentService := services.NewAppointmentService(db, smtpMailer)
	chatService := services.NewChatService(db)
	auditService := services.NewAuditService(db)

	notifier := alerts.NewNotifier(alertSettingsService, contactService, smtpMailer)
	logger.Info("Services initialized successfully")

	router := server.NewRouter(server.Handlers{
		Auth:         handlers.NewAuthHandler(userService, careTeamService, auditService, sessions, tokenManager, smtpMailer),
		User:         handlers.NewUserHandler(userService, auditService),
		Glucose:      handlers.NewGlucoseHandler(glucoseService, notifier, auditService),
		Food:         handlers.NewFoodHandler(foodService),
		Activity:     handlers.NewActivityHandler(activityService),
		Alerts:       handlers.NewAlertsHandler(alertSettingsService, contactService, auditService),
		CareTeam:     handlers.NewCareTeamHandler(careTeamService, auditService),
		Provider:     handlers.NewProviderHandler(careTeamService, glucoseService, foodService, activityService, userService),
		Admin:        handlers.NewAdminHandler(userService, auditService),
		Chat:         handlers.NewChatHandler(chatService),
		Appointments: handlers.NewAppointmentHandler(appointmentService, auditService),
		Dexcom:       handlers.NewDexcomHandler(dexcomClient, glucoseService, auditService, cfg.Server.AppURL),
		Directory:    handlers.NewDirectoryHandler(),
	}, sessions, userService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background appointment reminder sweep.
	go func() {
		ticker := time.NewTicker(reminderInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sent, err := appointmentService.SendDueReminders(ctx)
				if err != nil {
					logger.Error("Appointment reminder sweep failed", "error", err)
					continue
				}
				if sent > 0 {
					logger.Info("Appointment reminders sent", "count", sent)
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
