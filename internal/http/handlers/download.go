package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/http/middleware"
	"github.com/yungbote/officeorder-backend/internal/http/response"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
	"github.com/yungbote/officeorder-backend/internal/render"
	"github.com/yungbote/officeorder-backend/internal/services"
)

// DownloadHandler serves the session's draft as a file. Its routes sit
// behind SessionMiddleware.RequireDraft.
type DownloadHandler struct {
	log    *logger.Logger
	orders services.OrderService
}

func NewDownloadHandler(log *logger.Logger, orders services.OrderService) *DownloadHandler {
	return &DownloadHandler{log: log.With("handler", "DownloadHandler"), orders: orders}
}

// GET /download/:format
func (h *DownloadHandler) Download(c *gin.Context) {
	d, ok := middleware.DraftFrom(c)
	if !ok {
		response.RespondError(c, domain.ErrMissingDraft)
		return
	}
	f, err := render.ParseFormat(c.Param("format"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	doc, err := h.orders.Render(c.Request.Context(), d, f)
	if err != nil {
		h.log.Error("download failed", "format", f, "log_id", d.LogID, "error", err)
		response.RespondError(c, err)
		return
	}
	h.log.Info("document downloaded", "format", f, "log_id", d.LogID, "bytes", len(doc.Bytes))
	response.RespondAttachment(c, doc.ContentType, doc.Filename, doc.Bytes)
}
