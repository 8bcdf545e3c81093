package util

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hatchdotlol/passcheck/pkg/db"
	"github.com/hatchdotlol/passcheck/pkg/generate"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMinio    = "minio"
)

type Config struct {
	StartTime int64
	Version   string
	Port      int
	LogLevel  string

	MaxLength    int
	MaxBodyBytes int64

	SentryDSN      string
	LoggingWebhook *string
	AdminKeyHash   string

	Audit *Audit
}

// Audit is nil when audit logging is disabled.
type Audit struct {
	Backend      string
	QueueSize    int
	WriteTimeout time.Duration
	DBPath       string
	DatabaseURL  string
	Schema       string
	S3           db.S3Config
}

// LoadConfig reads the process environment. Call godotenv.Load first to
// pick up a .env file.
func LoadConfig() (Config, error) {
	cfg := Config{
		StartTime:    time.Now().Unix(),
		Version:      envString("VERSION", "dev"),
		Port:         envInt("PORT", 5000),
		LogLevel:     envString("LOG_LEVEL", "info"),
		MaxLength:    envInt("MAX_LENGTH", generate.DefaultMaxLength),
		MaxBodyBytes: int64(envInt("MAX_BODY_BYTES", 64<<10)),
		SentryDSN:    os.Getenv("SENTRY_DSN"),
		AdminKeyHash: strings.TrimSpace(os.Getenv("ADMIN_KEY_HASH")),
	}

	if w := os.Getenv("LOGGING_WEBHOOK"); w != "" {
		cfg.LoggingWebhook = &w
	}

	if cfg.MaxLength < generate.MinLength {
		return Config{}, fmt.Errorf("MAX_LENGTH must be at least %d", generate.MinLength)
	}

	if !envBool("ENABLE_LOG", false) {
		return cfg, nil
	}

	audit := &Audit{
		Backend:      strings.ToLower(envString("AUDIT_BACKEND", BackendSQLite)),
		QueueSize:    envInt("AUDIT_QUEUE", 256),
		WriteTimeout: envDuration("AUDIT_WRITE_TIMEOUT", 5*time.Second),
		DBPath:       envString("DB_PATH", "passcheck.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Schema:       envString("DATABASE_SCHEMA", "public"),
		S3: db.S3Config{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Secure:    os.Getenv("MINIO_SECURE") == "1",
			Bucket:    envString("MINIO_BUCKET", "pw-checks"),
		},
	}

	switch audit.Backend {
	case BackendSQLite:
	case BackendPostgres:
		if audit.DatabaseURL == "" {
			return Config{}, fmt.Errorf("AUDIT_BACKEND=%s requires DATABASE_URL", audit.Backend)
		}
	case BackendMinio:
		if audit.S3.Endpoint == "" {
			return Config{}, fmt.Errorf("AUDIT_BACKEND=%s requires MINIO_ENDPOINT", audit.Backend)
		}
	default:
		return Config{}, fmt.Errorf("unknown AUDIT_BACKEND %q", audit.Backend)
	}

	if cfg.AdminKeyHash == "" {
		slog.Warn("No admin key configured, recent audit records are not served")
	}

	cfg.Audit = audit
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func envString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// envInt reads a positive int, falling back to def.
func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// envDuration reads a positive duration such as "750ms", falling back to def.
func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
