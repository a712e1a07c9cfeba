package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/officeorder-backend/internal/platform/logger"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	log    *logger.Logger
	checks map[string]Pinger
}

func NewHealthHandler(log *logger.Logger, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), checks: checks}
}

// unhealthy names the dependency whose ping failed first.
type unhealthy struct {
	name string
	err  error
}

func (u *unhealthy) Error() string { return u.name + ": " + u.err.Error() }

// GET /healthcheck
// Dependencies are pinged concurrently; the first failure cancels the rest.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	for name, ping := range h.checks {
		g.Go(func() error {
			if err := ping(gctx); err != nil {
				return &unhealthy{name: name, err: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var u *unhealthy
		if errors.As(err, &u) {
			h.log.Warn("health check failed", "dependency", u.name, "error", u.err)
			c.String(http.StatusServiceUnavailable, u.name+" unavailable")
			return
		}
		c.String(http.StatusServiceUnavailable, "unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}
