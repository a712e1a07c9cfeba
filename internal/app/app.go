package app

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/officeorder-backend/internal/data/db"
	"github.com/yungbote/officeorder-backend/internal/domain"
	apphttp "github.com/yungbote/officeorder-backend/internal/http"
	"github.com/yungbote/officeorder-backend/internal/observability"
	"github.com/yungbote/officeorder-backend/internal/platform/envutil"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	DB       *db.Service
	Redis    *goredis.Client
	Repos    Repos
	Services Services
	Server   *apphttp.Server

	otelShutdown func(context.Context) error
}

// New builds the whole process. Any error wrapping domain.ErrConfiguration
// means the deployment is incomplete and the process must not start.
func New(ctx context.Context) (*App, error) {
	logMode := envutil.String("LOG_MODE", "development", nil)
	log, err := logger.New(logMode,
		logger.WithRedaction(envutil.Bool("LOG_REDACTION_ENABLED", true, nil)),
		logger.WithHashSalt(envutil.String("LOG_HASH_SALT", "", nil)),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)
	if err := cfg.Validate(); err != nil {
		log.Sync()
		return nil, err
	}

	a := &App{Log: log, Cfg: cfg}
	fail := func(err error) (*App, error) {
		a.Close(context.Background())
		return nil, err
	}

	a.otelShutdown, err = observability.InitOTel(ctx, log, cfg.Otel)
	if err != nil {
		log.Warn("otel init failed (continuing without tracing)", "error", err)
	}

	a.DB, err = db.Open(cfg.Database, log)
	if err != nil {
		return fail(fmt.Errorf("init database: %w", err))
	}
	if err := db.AutoMigrateAll(a.DB.DB()); err != nil {
		return fail(fmt.Errorf("database automigrate: %w", err))
	}

	clients, err := wireClients(ctx, log, cfg)
	if err != nil {
		return fail(err)
	}
	a.Redis = clients.Redis

	a.Repos = wireRepos(a.DB.DB(), log)
	a.Services, err = wireServices(log, cfg, clients, a.Repos)
	if err != nil {
		return fail(err)
	}

	handlers := wireHandlers(log, a.Services, healthChecks(a))
	middleware := wireMiddleware(log, cfg, a.Services)
	a.Server = apphttp.NewServer(wireRouter(log, cfg, handlers, middleware))
	return a, nil
}

// Run blocks serving HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
	return a.Server.Run(ctx, a.Cfg.Addr())
}

func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Log.Warn("redis close failed", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	a.Log.Sync()
}

// IsConfigurationError reports whether err should stop the process at startup.
func IsConfigurationError(err error) bool {
	return errors.Is(err, domain.ErrConfiguration)
}
