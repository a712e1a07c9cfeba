// Package session hands a composed draft from the generate step to the
// download step of the same browser session.
package session

import (
	"context"
	"time"

	"github.com/yungbote/officeorder-backend/internal/domain"
)

// ErrMissing is returned by Get when the session never composed a draft.
var ErrMissing = domain.ErrMissingDraft

// Draft is everything a renderer needs; it is the only thing download
// handlers receive.
type Draft struct {
	Language    domain.Language `json:"language"`
	ReferenceID string          `json:"reference_id"`
	OrderDate   string          `json:"order_date"`
	From        domain.Role     `json:"from"`
	To          domain.Role     `json:"to"`
	Content     string          `json:"content"`
	LogID       uint            `json:"log_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Store keeps one Draft per session id. Put overwrites.
type Store interface {
	Put(ctx context.Context, sessionID string, d Draft) error
	Get(ctx context.Context, sessionID string) (Draft, error)
}
