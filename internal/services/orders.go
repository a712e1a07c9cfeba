package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/officeorder-backend/internal/catalog"
	"github.com/yungbote/officeorder-backend/internal/composer"
	"github.com/yungbote/officeorder-backend/internal/data/repos/doclog"
	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/platform/dbctx"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
	"github.com/yungbote/officeorder-backend/internal/render"
	"github.com/yungbote/officeorder-backend/internal/session"
)

// Document is a rendered order ready to be sent as an attachment.
type Document struct {
	Bytes       []byte
	ContentType string
	Filename    string
}

type OrderService interface {
	Compose(ctx context.Context, sessionID string, req domain.DraftRequest) (session.Draft, error)
	Render(ctx context.Context, d session.Draft, f render.Format) (Document, error)
}

type orderService struct {
	log       *logger.Logger
	catalog   *catalog.Catalog
	composer  *composer.Composer
	docLog    doclog.Repo
	store     session.Store
	renderers render.Set
	now       func() time.Time
}

func NewOrderService(
	baseLog *logger.Logger,
	cat *catalog.Catalog,
	comp *composer.Composer,
	docLog doclog.Repo,
	store session.Store,
	renderers render.Set,
) OrderService {
	return &orderService{
		log:       baseLog.With("service", "OrderService"),
		catalog:   cat,
		composer:  comp,
		docLog:    docLog,
		store:     store,
		renderers: renderers,
		now:       time.Now,
	}
}

type logMetadata struct {
	SessionHash   string `json:"session_hash,omitempty"`
	Model         string `json:"model"`
	PromptVariant string `json:"prompt_variant"`
}

func (s *orderService) Compose(ctx context.Context, sessionID string, req domain.DraftRequest) (session.Draft, error) {
	if !req.Language.Valid() {
		return session.Draft{}, fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidRequest, req.Language)
	}
	if strings.TrimSpace(req.Instruction) == "" {
		return session.Draft{}, fmt.Errorf("%w: instruction is required", domain.ErrInvalidRequest)
	}
	from, err := s.catalog.Registry.Resolve(req.From)
	if err != nil {
		return session.Draft{}, fmt.Errorf("from: %w", err)
	}
	to, err := s.catalog.Registry.Resolve(req.To)
	if err != nil {
		return session.Draft{}, fmt.Errorf("to: %w", err)
	}

	now := s.now()
	draft := session.Draft{
		Language:    req.Language,
		ReferenceID: strings.TrimSpace(req.ReferenceID),
		OrderDate:   domain.NormalizeOrderDate(req.OrderDate, now),
		From:        from,
		To:          to,
		CreatedAt:   now.UTC(),
	}

	content, err := s.composer.Compose(ctx, req.Language, req.Instruction)
	if err != nil {
		return session.Draft{}, err
	}
	draft.Content = content

	meta, err := json.Marshal(logMetadata{
		SessionHash:   hashSession(sessionID),
		Model:         s.composer.Model(),
		PromptVariant: s.composer.Variant(),
	})
	if err != nil {
		return session.Draft{}, err
	}
	row := &domain.DocumentLog{
		Language:    req.Language.String(),
		ReferenceID: draft.ReferenceID,
		OrderDate:   draft.OrderDate,
		FromRole:    from.Key,
		ToRole:      to.Key,
		Content:     content,
		Metadata:    datatypes.JSON(meta),
	}
	if _, err := s.docLog.Create(dbctx.Context{Ctx: ctx}, []*domain.DocumentLog{row}); err != nil {
		return session.Draft{}, fmt.Errorf("write document log: %w", err)
	}
	draft.LogID = row.ID

	if err := s.store.Put(ctx, sessionID, draft); err != nil {
		return session.Draft{}, fmt.Errorf("store draft: %w", err)
	}
	s.log.Info("office order composed",
		"session_id", sessionID,
		"log_id", row.ID,
		"language", req.Language,
		"from", from.Key,
		"to", to.Key,
	)
	return draft, nil
}

func (s *orderService) Render(ctx context.Context, d session.Draft, f render.Format) (Document, error) {
	r, err := s.renderers.For(f)
	if err != nil {
		return Document{}, err
	}
	layout := render.BuildLayout(s.catalog.Profile(d.Language), s.catalog.Registry, d)

	var buf bytes.Buffer
	if err := r.Render(&buf, layout); err != nil {
		s.log.Error("render failed", "format", f, "log_id", d.LogID, "error", err)
		return Document{}, fmt.Errorf("render %s: %w", f, err)
	}
	return Document{
		Bytes:       buf.Bytes(),
		ContentType: r.ContentType(),
		Filename:    f.Filename(),
	}, nil
}

func hashSession(id string) string {
	if id == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:8])
}
