package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/officeorder-backend/internal/catalog"
	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/http/response"
	"github.com/yungbote/officeorder-backend/internal/platform/ctxutil"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
	"github.com/yungbote/officeorder-backend/internal/services"
)

const (
	formTemplate     = "form.html"
	referencePrefix  = "BISAG-N/Office Order/"
	noticeNeedsDraft = "Generate a document first, then download it."
)

type FormHandler struct {
	log       *logger.Logger
	orders    services.OrderService
	registry  *catalog.Registry
	languages []string
	now       func() time.Time
}

func NewFormHandler(log *logger.Logger, orders services.OrderService, registry *catalog.Registry) *FormHandler {
	langs := make([]string, 0, len(domain.Languages))
	for _, l := range domain.Languages {
		langs = append(langs, l.String())
	}
	return &FormHandler{
		log:       log.With("handler", "FormHandler"),
		orders:    orders,
		registry:  registry,
		languages: langs,
		now:       time.Now,
	}
}

// generateForm mirrors the fields of the order form.
type generateForm struct {
	Language     string `form:"language"`
	FromPosition string `form:"from_position"`
	FromOther    string `form:"from_other"`
	ToPosition   string `form:"to_position"`
	ToOther      string `form:"to_other"`
	OrderDate    string `form:"order_date"`
	ReferenceID  string `form:"reference_id"`
	Content      string `form:"content"`
}

type formView struct {
	Languages []string
	Positions []string
	Other     string
	Form      generateForm
	Notice    string
	Error     string
	Preview   string
}

func (h *FormHandler) view(f generateForm) formView {
	return formView{
		Languages: h.languages,
		Positions: append(h.registry.Keys(), domain.OtherPosition),
		Other:     domain.OtherPosition,
		Form:      f,
	}
}

func (h *FormHandler) blankForm() generateForm {
	f := generateForm{Language: domain.LanguageEnglish.String()}
	if keys := h.registry.Keys(); len(keys) > 0 {
		f.FromPosition, f.ToPosition = keys[0], keys[0]
	}
	f.ReferenceID = fmt.Sprintf("%s%d/", referencePrefix, h.now().Year())
	return f
}

// GET /
func (h *FormHandler) Index(c *gin.Context) {
	v := h.view(h.blankForm())
	if c.Query("error") == "missing_draft" {
		v.Notice = noticeNeedsDraft
	}
	c.HTML(http.StatusOK, formTemplate, v)
}

// POST /generate
func (h *FormHandler) Generate(c *gin.Context) {
	var f generateForm
	if err := c.ShouldBind(&f); err != nil {
		h.fail(c, f, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}
	lang, err := domain.ParseLanguage(f.Language)
	if err != nil {
		h.fail(c, f, err)
		return
	}

	ctx := c.Request.Context()
	d, err := h.orders.Compose(ctx, ctxutil.SessionID(ctx), domain.DraftRequest{
		Language:    lang,
		ReferenceID: f.ReferenceID,
		OrderDate:   f.OrderDate,
		Instruction: f.Content,
		From:        domain.RoleInput{Position: f.FromPosition, Other: f.FromOther},
		To:          domain.RoleInput{Position: f.ToPosition, Other: f.ToOther},
	})
	if err != nil {
		h.fail(c, f, err)
		return
	}

	v := h.view(f)
	v.Preview = d.Content
	c.HTML(http.StatusOK, formTemplate, v)
}

// fail re-renders the submitted form with a message; no preview is shown.
func (h *FormHandler) fail(c *gin.Context, f generateForm, err error) {
	ae := response.Classify(err)
	if ae.Status >= http.StatusInternalServerError {
		h.log.Error("generate failed", "code", ae.Code, "error", err)
	} else {
		h.log.Info("generate rejected", "code", ae.Code, "error", err)
	}
	_ = c.Error(err)
	v := h.view(f)
	v.Error = ae.UserMessage()
	c.HTML(ae.Status, formTemplate, v)
}
