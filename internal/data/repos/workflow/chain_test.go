package workflow

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/okaycreative/studioops/internal/data/repos/testutil"
	types "github.com/okaycreative/studioops/internal/domain"
	"github.com/okaycreative/studioops/internal/platform/dbctx"
)

func TestContentRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewContentRepo(db, testutil.Logger(t))

	idea := testutil.SeedIdea(t, ctx, tx, "content repo idea")
	row := &types.Content{
		ID:           uuid.New(),
		IdeaID:       idea.ID,
		Title:        idea.Title,
		ScriptStatus: types.ScriptStatusDraft,
	}
	if _, err := repo.Create(dbc, []*types.Content{row}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByIdeaID(dbc, idea.ID)
	if err != nil || got == nil || got.ID != row.ID {
		t.Fatalf("GetByIdeaID: got %+v err %v", got, err)
	}
	if got, err := repo.GetByIdeaID(dbc, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByIdeaID unknown: got %+v err %v", got, err)
	}

	exists, err := repo.ExistsByIdeaID(dbc, idea.ID)
	if err != nil || !exists {
		t.Fatalf("ExistsByIdeaID: exists=%v err=%v", exists, err)
	}
	exists, err = repo.ExistsByIdeaID(dbc, uuid.New())
	if err != nil || exists {
		t.Fatalf("ExistsByIdeaID unknown: exists=%v err=%v", exists, err)
	}

	batch, err := repo.GetByIdeaIDs(dbc, []uuid.UUID{idea.ID})
	if err != nil || len(batch) != 1 {
		t.Fatalf("GetByIdeaIDs: err=%v len=%d", err, len(batch))
	}

	if err := repo.UpdateFields(dbc, row.ID, map[string]interface{}{"script_status": types.ScriptStatusCompleted}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	got, _ = repo.GetByIdeaID(dbc, idea.ID)
	if got.ScriptStatus != types.ScriptStatusCompleted {
		t.Fatalf("UpdateFields: status = %q", got.ScriptStatus)
	}
}

func TestProductionAndSocialPostRepos(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	productions := NewProductionRepo(db, testutil.Logger(t))
	posts := NewSocialPostRepo(db, testutil.Logger(t))

	idea := testutil.SeedIdea(t, ctx, tx, "chain repo idea")
	content := testutil.SeedContent(t, ctx, tx, idea.ID, types.ScriptStatusCompleted)

	production := &types.Production{
		ID:               uuid.New(),
		ContentID:        content.ID,
		ProductionStatus: types.ProductionStatusInProgress,
	}
	if _, err := productions.Create(dbc, []*types.Production{production}); err != nil {
		t.Fatalf("Create production: %v", err)
	}
	got, err := productions.GetByContentID(dbc, content.ID)
	if err != nil || got == nil || got.ID != production.ID {
		t.Fatalf("GetByContentID: got %+v err %v", got, err)
	}
	exists, err := productions.ExistsByContentID(dbc, content.ID)
	if err != nil || !exists {
		t.Fatalf("ExistsByContentID: exists=%v err=%v", exists, err)
	}
	batch, err := productions.GetByContentIDs(dbc, []uuid.UUID{content.ID})
	if err != nil || len(batch) != 1 {
		t.Fatalf("GetByContentIDs: err=%v len=%d", err, len(batch))
	}

	post := &types.SocialPost{
		ID:        uuid.New(),
		ContentID: content.ID,
		Status:    types.PostStatusDraft,
	}
	if _, err := posts.Create(dbc, []*types.SocialPost{post}); err != nil {
		t.Fatalf("Create post: %v", err)
	}
	gotPost, err := posts.GetByContentID(dbc, content.ID)
	if err != nil || gotPost == nil || gotPost.ID != post.ID {
		t.Fatalf("GetByContentID post: got %+v err %v", gotPost, err)
	}
	if err := posts.UpdateFields(dbc, post.ID, map[string]interface{}{
		"status":   types.PostStatusPublished,
		"approved": true,
	}); err != nil {
		t.Fatalf("UpdateFields post: %v", err)
	}
	gotPost, _ = posts.GetByContentID(dbc, content.ID)
	if gotPost.Status != types.PostStatusPublished || !gotPost.Approved {
		t.Fatalf("post not updated: %+v", gotPost)
	}
}
