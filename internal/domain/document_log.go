package domain

import (
	"time"

	"gorm.io/datatypes"
)

const DocTypeOfficeOrder = "Office Order"

// DocumentLog is the insert-only audit row written for every generated draft.
type DocumentLog struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	DocType     string         `gorm:"column:doc_type;not null;index" json:"doc_type"`
	Language    string         `gorm:"column:language;not null;index" json:"language"`
	ReferenceID string         `gorm:"column:reference_id;index" json:"reference_id"`
	OrderDate   string         `gorm:"column:order_date" json:"order_date"`
	FromRole    string         `gorm:"column:from_role" json:"from_role"`
	ToRole      string         `gorm:"column:to_role" json:"to_role"`
	Content     string         `gorm:"column:content;type:text;not null" json:"content"`
	Metadata    datatypes.JSON `gorm:"column:metadata" json:"metadata"`
	CreatedAt   time.Time      `gorm:"not null;index" json:"created_at"`
}

func (DocumentLog) TableName() string { return "document_log" }
