package doclog

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/officeorder-backend/internal/data/repos/testutil"
	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/platform/dbctx"
)

func TestDocumentLogRepoCreate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(dbctx.Context{Ctx: ctx, Tx: tx}, []*domain.DocumentLog{
		{
			Language:    "English",
			ReferenceID: "BISAG-N/Office Order/2026/1",
			Content:     "Paragraph one.",
			Metadata:    datatypes.JSON([]byte(`{"prompt_variant":"strict"}`)),
			CreatedAt:   time.Now().UTC(),
		},
		{
			Language:    "Hindi",
			ReferenceID: "BISAG-N/Office Order/2026/2",
			Content:     "पहला अनुच्छेद।",
			CreatedAt:   time.Now().UTC(),
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("Create: expected 2 rows, got %d", len(created))
	}
	if created[0].ID == 0 || created[1].ID <= created[0].ID {
		t.Fatalf("expected increasing ids, got %d, %d", created[0].ID, created[1].ID)
	}

	var rows []domain.DocumentLog
	if err := tx.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.DocType != domain.DocTypeOfficeOrder {
			t.Fatalf("doc type defaulted wrong: %q", r.DocType)
		}
	}
	if rows[1].Content != "पहला अनुच्छेद।" {
		t.Fatalf("content round trip: %q", rows[1].Content)
	}
}

func TestDocumentLogRepoCreateEmpty(t *testing.T) {
	repo := NewRepo(testutil.DB(t), testutil.Logger(t))
	got, err := repo.Create(dbctx.Context{Ctx: context.Background()}, nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("Create(nil) = %v, %v", got, err)
	}
}
