package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/antonkovh/medminder/internal/api"
	"github.com/antonkovh/medminder/internal/config"
	"github.com/antonkovh/medminder/internal/db"
	"github.com/antonkovh/medminder/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	repos := db.NewRepositories(database)

	clock := services.NewClock(location)
	notifier := buildNotifier(cfg)

	ledger := services.NewLedgerService(repos.Medications, repos.DoseLogs, clock)
	medications := services.NewMedicationService(repos.Medications, ledger)
	schedule := services.NewScheduleService(repos.Medications, repos.DoseLogs, clock)
	adherence := services.NewAdherenceService(repos.Medications, repos.DoseLogs)
	healthLogs := services.NewHealthLogService(repos.HealthLogs)
	care := services.NewCareService(repos.Users, repos.CareLinks)
	auth := services.NewAuthService(repos.Users)
	reminders := services.NewReminderService(repos.Medications, ledger, notifier, clock, cfg.ScanInterval)

	handler := api.NewHandler(auth, medications, schedule, adherence, healthLogs, care, reminders, cfg.SecretKey)

	app := fiber.New(fiber.Config{
		AppName:               "MedMinder",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	reminders.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("MedMinder listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func buildNotifier(cfg config.Config) services.Notifier {
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		return services.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	}
	return services.NewLogNotifier()
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
