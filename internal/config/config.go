package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	TelegramToken   string
	TelegramAPIURL  string
	LongPollSeconds int
	PollInterval    time.Duration

	TranslateAPIKey string
	TranslateAPIURL string
	HTTPTimeout     time.Duration

	AdminUsername  string
	AdminDenyReply string

	Log     LogConfig
	Journal JournalConfig
}

// LogConfig holds diagnostic log settings
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// JournalConfig holds request journal settings
type JournalConfig struct {
	Enabled       bool
	RetentionDays int
	Database      DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:   os.Getenv("TELE_TOKEN"),
		TelegramAPIURL:  getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		TranslateAPIKey: os.Getenv("YA_API_KEY"),
		TranslateAPIURL: getEnv("YA_API_URL", "https://translate.yandex.net/api/v1.5/tr.json/translate"),
		AdminUsername:   os.Getenv("ADMIN_USERNAME"),
		AdminDenyReply:  os.Getenv("ADMIN_DENY_REPLY"),
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", "yatranslator.log"),
		},
		Journal: JournalConfig{
			Database: DatabaseConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnv("DB_PORT", "5432"),
				Name:     getEnv("DB_NAME", "yatranslator"),
				User:     getEnv("DB_USER", "yatranslator"),
				Password: os.Getenv("DB_PASSWORD"),
			},
		},
	}

	// Validate required fields
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELE_TOKEN is required")
	}
	if cfg.TranslateAPIKey == "" {
		return nil, fmt.Errorf("YA_API_KEY is required")
	}
	if cfg.AdminUsername == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME is required")
	}

	var err error
	if cfg.PollInterval, err = getDuration("POLL_INTERVAL", 100*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.LongPollSeconds, err = getInt("TELEGRAM_LONGPOLL_SECONDS", 0); err != nil {
		return nil, err
	}
	if cfg.LongPollSeconds < 0 {
		return nil, fmt.Errorf("TELEGRAM_LONGPOLL_SECONDS must be >= 0")
	}
	if cfg.Log.MaxSizeMB, err = getInt("LOG_MAX_SIZE_MB", 10); err != nil {
		return nil, err
	}
	if cfg.Log.MaxBackups, err = getInt("LOG_MAX_BACKUPS", 3); err != nil {
		return nil, err
	}
	if cfg.Journal.Enabled, err = getBool("JOURNAL_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.Journal.RetentionDays, err = getInt("JOURNAL_RETENTION_DAYS", 30); err != nil {
		return nil, err
	}

	if cfg.Journal.Enabled && cfg.Journal.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required when JOURNAL_ENABLED is set")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Journal.Database.Host,
		c.Journal.Database.Port,
		c.Journal.Database.User,
		c.Journal.Database.Password,
		c.Journal.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
