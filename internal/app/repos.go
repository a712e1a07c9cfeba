package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/officeorder-backend/internal/data/repos/doclog"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
)

type Repos struct {
	DocumentLog doclog.Repo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		DocumentLog: doclog.NewRepo(db, log),
	}
}
