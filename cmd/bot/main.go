package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yatranslator/internal/client/telegram"
	"yatranslator/internal/client/yandex"
	"yatranslator/internal/config"
	"yatranslator/internal/domain"
	"yatranslator/internal/handler"
	"yatranslator/internal/logger"
	"yatranslator/internal/middleware"
	"yatranslator/internal/poller"
	"yatranslator/internal/repository"
	"yatranslator/internal/repository/postgres"
	"yatranslator/internal/script"
	"yatranslator/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, closeLog, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Stdout:     true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("Bot stopped with error", zap.Error(err))
		closeLog()
		os.Exit(1)
	}

	log.Info("Bot stopped gracefully")
	closeLog()
}

func run(cfg *config.Config, log *zap.Logger) error {
	log.Info("Starting yatranslator bot")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional request journal
	var journalRepo repository.JournalRepository
	if cfg.Journal.Enabled {
		db, err := connectDatabase(cfg.DSN(), log)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := runMigrations(db, log); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		journalRepo = postgres.NewJournalRepo(db)
		log.Info("Request journal enabled", zap.Int("retention_days", cfg.Journal.RetentionDays))
	}
	journal := service.NewJournalService(journalRepo, cfg.Journal.RetentionDays, log)

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	messenger, err := telegram.NewClient(telegram.Settings{
		Token:           cfg.TelegramToken,
		APIURL:          cfg.TelegramAPIURL,
		HTTPClient:      &http.Client{Timeout: cfg.HTTPTimeout + time.Duration(cfg.LongPollSeconds)*time.Second},
		LongPollSeconds: cfg.LongPollSeconds,
	})
	if err != nil {
		return err
	}

	translator := yandex.NewClient(httpClient, cfg.TranslateAPIURL, cfg.TranslateAPIKey, log)

	dispatcher := handler.NewDispatcher(
		messenger,
		translator,
		script.NewCyrillic(),
		journal,
		middleware.AdminOptions{
			Username:  cfg.AdminUsername,
			DenyReply: cfg.AdminDenyReply,
		},
		log,
	)

	state := domain.NewState(domain.SupportedLanguages, time.Now())

	if journal.Enabled() {
		go runCleanupJob(ctx, journal, log)
	}

	loop := poller.New(messenger, dispatcher, state, cfg.PollInterval, log)

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Shutdown signal received, stopping bot...")
		return nil
	}
	return err
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, log *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 10
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			log.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			log.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, log *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("No new migrations to apply")
	} else {
		log.Info("Migrations applied successfully")
	}

	return nil
}

// runCleanupJob runs periodic cleanup of old journal entries
func runCleanupJob(ctx context.Context, journal *service.JournalService, log *zap.Logger) {
	// Run cleanup once at startup
	if err := journal.CleanupOldEntries(ctx); err != nil {
		log.Error("Failed to run initial cleanup", zap.Error(err))
	}

	// Then run every 24 hours
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			log.Info("Running scheduled cleanup")
			if err := journal.CleanupOldEntries(ctx); err != nil {
				log.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
