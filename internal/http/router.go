package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/officeorder-backend/internal/http/handlers"
	httpMW "github.com/yungbote/officeorder-backend/internal/http/middleware"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	SessionMiddleware *httpMW.SessionMiddleware

	FormHandler     *httpH.FormHandler
	DownloadHandler *httpH.DownloadHandler
	HealthHandler   *httpH.HealthHandler
}

const healthPath = "/healthcheck"

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log, healthPath))
	r.Use(httpMW.CORS(cfg.CORSOrigins))
	r.SetHTMLTemplate(httpH.Templates())

	// Health
	if cfg.HealthHandler != nil {
		r.GET(healthPath, cfg.HealthHandler.HealthCheck)
	}

	pages := r.Group("/")
	{
		if cfg.SessionMiddleware != nil {
			pages.Use(cfg.SessionMiddleware.Attach())
		}

		// Form
		if cfg.FormHandler != nil {
			pages.GET("/", cfg.FormHandler.Index)
			pages.POST("/generate", cfg.FormHandler.Generate)
		}

		// Downloads
		if cfg.DownloadHandler != nil && cfg.SessionMiddleware != nil {
			pages.GET("/download/:format", cfg.SessionMiddleware.RequireDraft(), cfg.DownloadHandler.Download)
		}
	}

	return r
}
