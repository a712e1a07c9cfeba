package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/officeorder-backend/internal/catalog"
	"github.com/yungbote/officeorder-backend/internal/data/db"
	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/observability"
	"github.com/yungbote/officeorder-backend/internal/platform/envutil"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
	"github.com/yungbote/officeorder-backend/internal/platform/openai"
)

const (
	serviceName        = "officeorder"
	devSessionSecret   = "officeorder-development-only-secret"
	minSessionSecret   = 16
	defaultSessionTTLs = 86400
)

type Config struct {
	LogMode string
	Port    int

	OpenAI        openai.Config
	PromptVariant string
	CatalogPath   string

	FontDir     string
	FontRegular string
	FontBold    string

	Database  db.Config
	RedisAddr string

	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool

	CORSOrigins []string
	Otel        observability.OtelConfig
}

func LoadConfig(log *logger.Logger) Config {
	logMode := envutil.String("LOG_MODE", "development", log)
	timeout := envutil.Int("OPENAI_TIMEOUT_SECONDS", 0, log)

	cfg := Config{
		LogMode: logMode,
		Port:    envutil.Int("PORT", 8080, log),
		OpenAI: openai.Config{
			APIKey:  envutil.String("OPENAI_API_KEY", "", log),
			BaseURL: envutil.String("OPENAI_BASE_URL", openai.DefaultBaseURL, log),
			Model:   envutil.String("OPENAI_MODEL", openai.DefaultModel, log),
			Timeout: time.Duration(timeout) * time.Second,
		},
		PromptVariant: envutil.String("PROMPT_VARIANT", catalog.PromptStrict, log),
		CatalogPath:   envutil.String("CATALOG_PATH", "", log),
		FontDir:       envutil.String("FONT_DIR", "assets/fonts", log),
		FontRegular:   envutil.String("FONT_REGULAR", "FreeSerif.ttf", log),
		FontBold:      envutil.String("FONT_BOLD", "", log),
		Database: db.Config{
			Driver: envutil.String("DATABASE_DRIVER", db.DriverSQLite, log),
			DSN:    envutil.String("DATABASE_DSN", "officeorder.db", log),
		},
		RedisAddr:     envutil.String("REDIS_ADDR", "", log),
		SessionSecret: envutil.String("SESSION_SECRET", "", log),
		SessionTTL:    time.Duration(envutil.Int("SESSION_TTL_SECONDS", defaultSessionTTLs, log)) * time.Second,
		SecureCookies: envutil.Bool("SESSION_COOKIE_SECURE", !isDevelopment(logMode), log),
		CORSOrigins:   envutil.CSV("CORS_ALLOWED_ORIGINS", log),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", serviceName, log),
			Environment: logMode,
			Version:     envutil.String("APP_VERSION", "", log),
			SampleRatio: 0.1,
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log)),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
		},
	}
	if t, ok := envutil.Float("OPENAI_TEMPERATURE", log); ok {
		cfg.OpenAI.Temperature = &t
	}
	if r, ok := envutil.Float("OTEL_SAMPLER_RATIO", log); ok {
		cfg.Otel.SampleRatio = r
	}
	if cfg.SessionSecret == "" && isDevelopment(logMode) {
		log.Warn("SESSION_SECRET not set; using the development secret")
		cfg.SessionSecret = devSessionSecret
	}
	return cfg
}

// Validate reports every problem that must stop the process before it
// listens. All failures wrap domain.ErrConfiguration.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.OpenAI.APIKey) == "" {
		problems = append(problems, "OPENAI_API_KEY is required")
	}
	if len(c.SessionSecret) < minSessionSecret {
		problems = append(problems, fmt.Sprintf("SESSION_SECRET must be at least %d bytes", minSessionSecret))
	}
	if c.SessionTTL <= 0 {
		problems = append(problems, "SESSION_TTL_SECONDS must be positive")
	}
	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT %d is out of range", c.Port))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

func isDevelopment(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		return false
	}
	return true
}
