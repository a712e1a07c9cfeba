// Package doclog writes the audit trail of generated office orders.
package doclog

import (
	"gorm.io/gorm"

	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/platform/dbctx"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
)

// Repo is insert-only; nothing in the service reads the log back.
type Repo interface {
	Create(dbc dbctx.Context, rows []*domain.DocumentLog) ([]*domain.DocumentLog, error)
}

type repo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRepo(db *gorm.DB, baseLog *logger.Logger) Repo {
	return &repo{db: db, log: baseLog.With("repo", "DocumentLogRepo")}
}

func (r *repo) Create(dbc dbctx.Context, rows []*domain.DocumentLog) ([]*domain.DocumentLog, error) {
	if len(rows) == 0 {
		return []*domain.DocumentLog{}, nil
	}
	for _, row := range rows {
		if row.DocType == "" {
			row.DocType = domain.DocTypeOfficeOrder
		}
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		r.log.Error("document log insert failed", "rows", len(rows), "error", err)
		return nil, err
	}
	return rows, nil
}
