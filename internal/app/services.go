package app

import (
	"fmt"

	"github.com/yungbote/officeorder-backend/internal/catalog"
	"github.com/yungbote/officeorder-backend/internal/composer"
	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
	"github.com/yungbote/officeorder-backend/internal/render"
	"github.com/yungbote/officeorder-backend/internal/services"
	"github.com/yungbote/officeorder-backend/internal/session"
)

type Services struct {
	Catalog  *catalog.Catalog
	Composer *composer.Composer
	Sessions session.Store
	Codec    *session.Codec
	Orders   services.OrderService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, repos Repos) (Services, error) {
	log.Info("Wiring services...")

	cat, err := catalog.Load(cfg.CatalogPath, log)
	if err != nil {
		return Services{}, err
	}
	comp, err := composer.New(log, clients.LLM, cat, cfg.PromptVariant)
	if err != nil {
		return Services{}, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}

	var store session.Store
	if clients.Redis != nil {
		store = session.NewRedisStore(log, clients.Redis, cfg.SessionTTL)
	} else {
		store = session.NewMemoryStore(cfg.SessionTTL)
	}
	codec, err := session.NewCodec(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return Services{}, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}

	orders := services.NewOrderService(log, cat, comp, repos.DocumentLog, store, render.Set{
		PDF:  render.NewPDFRenderer(clients.Fonts),
		DOCX: render.NewDOCXRenderer(),
	})
	log.Info("Services ready",
		"model", comp.Model(),
		"prompt_variant", comp.Variant(),
		"session_store", fmt.Sprintf("%T", store),
	)
	return Services{Catalog: cat, Composer: comp, Sessions: store, Codec: codec, Orders: orders}, nil
}
