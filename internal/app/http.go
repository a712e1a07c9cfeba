package app

import (
	"context"

	"github.com/yungbote/officeorder-backend/internal/http"
	httpH "github.com/yungbote/officeorder-backend/internal/http/handlers"
	httpMW "github.com/yungbote/officeorder-backend/internal/http/middleware"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
)

type Middleware struct {
	Session *httpMW.SessionMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Form     *httpH.FormHandler
	Download *httpH.DownloadHandler
}

func wireMiddleware(log *logger.Logger, cfg Config, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Session: httpMW.NewSessionMiddleware(log, services.Codec, services.Sessions, cfg.SecureCookies),
	}
}

func wireHandlers(log *logger.Logger, services Services, checks map[string]httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(log, checks),
		Form:     httpH.NewFormHandler(log, services.Orders, services.Catalog.Registry),
		Download: httpH.NewDownloadHandler(log, services.Orders),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) http.RouterConfig {
	return http.RouterConfig{
		Log:               log,
		ServiceName:       cfg.Otel.ServiceName,
		CORSOrigins:       cfg.CORSOrigins,
		SessionMiddleware: middleware.Session,
		FormHandler:       handlers.Form,
		DownloadHandler:   handlers.Download,
		HealthHandler:     handlers.Health,
	}
}

func healthChecks(a *App) map[string]httpH.Pinger {
	checks := map[string]httpH.Pinger{}
	if a.DB != nil {
		checks["database"] = func(ctx context.Context) error {
			sqlDB, err := a.DB.DB().DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}
	if a.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return a.Redis.Ping(ctx).Err()
		}
	}
	return checks
}
