// Package config reads process settings from the environment, after an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	Port        string
	LogLevel    string
	CORSOrigins []string

	StateBackend     string
	StatePath        string
	SnapshotInterval time.Duration
	SeedFile         string

	LandingDelay time.Duration

	DatabaseURL string
	AMQPURL     string
	OwnerUserID string

	Mail MailConfig
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
}

// Enabled reports whether landing notifications can be sent.
func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.NotifyTo != ""
}

// Load reads .env when present and then the environment.
func Load() (Config, error) {
	godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from any lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:         get("PORT", "8080"),
		LogLevel:     get("LOG_LEVEL", "info"),
		CORSOrigins:  splitList(get("CORS_ORIGINS", "http://localhost:5173")),
		StateBackend: get("STATE_BACKEND", BackendFile),
		StatePath:    get("STATE_PATH", "leadflow-storage.json"),
		SeedFile:     get("SEED_FILE", ""),
		DatabaseURL:  get("DATABASE_URL", ""),
		AMQPURL:      get("AMQP_URL", ""),
		OwnerUserID:  get("OWNER_USER_ID", ""),
		Mail: MailConfig{
			Host:     get("MAIL_HOST", ""),
			User:     get("MAIL_USER", ""),
			Password: get("MAIL_PASS", ""),
			From:     get("MAIL_FROM", "no-reply@leadflow.local"),
			NotifyTo: get("NOTIFY_EMAIL", ""),
		},
	}

	var err error
	if cfg.SnapshotInterval, err = time.ParseDuration(get("SNAPSHOT_INTERVAL", "30s")); err != nil {
		return Config{}, fmt.Errorf("SNAPSHOT_INTERVAL: %w", err)
	}
	if cfg.LandingDelay, err = time.ParseDuration(get("LANDING_DELAY", "1s")); err != nil {
		return Config{}, fmt.Errorf("LANDING_DELAY: %w", err)
	}
	if cfg.Mail.Port, err = strconv.Atoi(get("MAIL_PORT", "587")); err != nil {
		return Config{}, fmt.Errorf("MAIL_PORT: %w", err)
	}

	switch cfg.StateBackend {
	case BackendFile, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("STATE_BACKEND: unknown backend %q", cfg.StateBackend)
	}
	if cfg.DatabaseURL != "" && cfg.OwnerUserID == "" {
		return Config{}, fmt.Errorf("OWNER_USER_ID is required when DATABASE_URL is set")
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
