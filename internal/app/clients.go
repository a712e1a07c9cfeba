package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/platform/fonts"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
	"github.com/yungbote/officeorder-backend/internal/platform/openai"
	"github.com/yungbote/officeorder-backend/internal/session"
)

type Clients struct {
	LLM   openai.Client
	Redis *goredis.Client
	Fonts *fonts.Set
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// OpenAI
	llm, err := openai.NewClient(log, cfg.OpenAI)
	if err != nil {
		return Clients{}, fmt.Errorf("%w: init openai client: %v", domain.ErrConfiguration, err)
	}

	// Fonts
	set, err := fonts.Load(cfg.FontDir, cfg.FontRegular, cfg.FontBold)
	if err != nil {
		return Clients{}, fmt.Errorf("%w: load unicode fonts from %s: %v", domain.ErrConfiguration, cfg.FontDir, err)
	}

	// Redis
	var rdb *goredis.Client
	if cfg.RedisAddr != "" {
		rdb, err = session.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis: %w", err)
		}
	}

	return Clients{LLM: llm, Redis: rdb, Fonts: set}, nil
}
