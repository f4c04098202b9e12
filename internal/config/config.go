package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	Port        string
	ContentPath string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Access gate: single shared code, compared verbatim
	AccessCode string

	// Month (1-12) the LLC's annual state filings are pinned to; recurring
	// deadlines land on the last day of this month.
	AnniversaryMonth int

	// Session cookie lifetime
	SessionExpiry time.Duration

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible, optional; documents get presigned download
	// links only when a bucket is configured)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string
	S3PresignExpiry time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName:     envString("APP_NAME", "ComplyTrack"),
		AppEnv:      envString("APP_ENV", "development"),
		Port:        envString("PORT", "8090"),
		ContentPath: envString("CONTENT_PATH", "content"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/complytrack.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		AccessCode:       envString("ACCESS_CODE", "demo-123"),
		AnniversaryMonth: envMonth("ANNIVERSARY_MONTH", 8),
		SessionExpiry:    envDuration("SESSION_EXPIRY", 168*time.Hour), // 7 days

		SentryDSN: envString("SENTRY_DSN", ""),

		S3Region:        envString("S3_REGION", ""),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

// envMonth reads a calendar month (1-12); anything else falls back to the
// default so a typo can never produce an impossible due date.
func envMonth(key string, def int) int {
	n := envInt(key, def)
	if n < 1 || n > 12 {
		slog.Warn("config month out of range, using default", "key", key, "value", n, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// The access code and storage credentials are excluded. Safe to expose in
// ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:          c.AppName,
		AppEnv:           c.AppEnv,
		Port:             c.Port,
		AnniversaryMonth: c.AnniversaryMonth,
	}
}
