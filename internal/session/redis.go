package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/officeorder-backend/internal/platform/logger"
)

const defaultKeyPrefix = "officeorder:draft:"

// RedisStore shares drafts between replicas. Keys expire with the session.
type RedisStore struct {
	log    *logger.Logger
	rdb    goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisClient dials addr and pings it.
func NewRedisClient(ctx context.Context, addr string) (*goredis.Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func NewRedisStore(log *logger.Logger, rdb goredis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{
		log:    log.With("service", "RedisSessionStore"),
		rdb:    rdb,
		prefix: defaultKeyPrefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, d Draft) error {
	if sessionID == "" {
		return fmt.Errorf("session id required")
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.prefix+sessionID, raw, s.ttl).Err(); err != nil {
		s.log.Warn("session put failed", "session_id", sessionID, "error", err)
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (Draft, error) {
	if sessionID == "" {
		return Draft{}, ErrMissing
	}
	raw, err := s.rdb.Get(ctx, s.prefix+sessionID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return Draft{}, ErrMissing
	}
	if err != nil {
		return Draft{}, fmt.Errorf("redis get: %w", err)
	}
	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return d, nil
}
