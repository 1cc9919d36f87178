package workflow

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/okaycreative/studioops/internal/data/repos/testutil"
	types "github.com/okaycreative/studioops/internal/domain"
	"github.com/okaycreative/studioops/internal/platform/dbctx"
)

func TestIdeaRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewIdeaRepo(db, testutil.Logger(t))

	contributor := uuid.New()
	first := &types.Idea{
		ID:            uuid.New(),
		Title:         "first idea",
		ContributorID: &contributor,
		Status:        "approved",
		Priority:      "high",
	}
	second := &types.Idea{
		ID:     uuid.New(),
		Title:  "second idea",
		Status: "new",
	}

	created, err := repo.Create(dbc, []*types.Idea{first, second})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("Create: expected 2, got %d", len(created))
	}

	got, err := repo.GetByID(dbc, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Title != "first idea" {
		t.Fatalf("GetByID: got %+v", got)
	}

	if got, err := repo.GetByID(dbc, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByID unknown: got %+v err %v", got, err)
	}

	locked, err := repo.LockByID(dbc, first.ID)
	if err != nil {
		t.Fatalf("LockByID: %v", err)
	}
	if locked == nil || locked.ID != first.ID {
		t.Fatalf("LockByID: got %+v", locked)
	}
	if locked, err := repo.LockByID(dbc, uuid.New()); err != nil || locked != nil {
		t.Fatalf("LockByID unknown: got %+v err %v", locked, err)
	}

	all, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) < 2 {
		t.Fatalf("List: expected at least 2, got %d", len(all))
	}

	if err := repo.UpdateFields(dbc, first.ID, map[string]interface{}{"status": "in progress"}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	got, _ = repo.GetByID(dbc, first.ID)
	if got.Status != "in progress" {
		t.Fatalf("UpdateFields: status = %q", got.Status)
	}

	// no-op cases
	if err := repo.UpdateFields(dbc, uuid.Nil, map[string]interface{}{"status": "x"}); err != nil {
		t.Fatalf("UpdateFields nil id: %v", err)
	}
	if _, err := repo.Create(dbc, nil); err != nil {
		t.Fatalf("Create empty: %v", err)
	}
}
