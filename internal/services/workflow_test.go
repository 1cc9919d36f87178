package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/okaycreative/studioops/internal/data/repos"
	"github.com/okaycreative/studioops/internal/data/repos/testutil"
	types "github.com/okaycreative/studioops/internal/domain"
	domainagg "github.com/okaycreative/studioops/internal/domain/aggregates"
	"github.com/okaycreative/studioops/internal/domain/workflow"
)

func newTestWorkflowService(t *testing.T, tx *gorm.DB) WorkflowService {
	t.Helper()
	log := testutil.Logger(t)
	return NewWorkflowService(
		log,
		repos.NewIdeaRepo(tx, log),
		repos.NewContentRepo(tx, log),
		repos.NewProductionRepo(tx, log),
		repos.NewSocialPostRepo(tx, log),
	)
}

func TestWorkflowServiceGetItem(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	svc := newTestWorkflowService(t, tx)
	idea := testutil.SeedIdea(t, ctx, tx, "reader item")
	content := testutil.SeedContent(t, ctx, tx, idea.ID, types.ScriptStatusCompleted)
	testutil.SeedProduction(t, ctx, tx, content.ID, types.ProductionStatusInProgress)

	item, err := svc.GetItem(ctx, idea.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if item.Stage != workflow.StageProduction {
		t.Fatalf("stage = %q, want %q", item.Stage, workflow.StageProduction)
	}
	if !item.CanMoveForward {
		t.Fatal("in-progress production should be advanceable")
	}
	if item.Content == nil || item.Production == nil || item.SocialPost != nil {
		t.Fatalf("projection shape wrong: %+v", item.Projection)
	}
}

func TestWorkflowServiceGetItemNotFound(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	svc := newTestWorkflowService(t, tx)
	_, err := svc.GetItem(context.Background(), uuid.New())
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	_, err = svc.GetItem(context.Background(), uuid.Nil)
	if !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWorkflowServiceListItems(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	svc := newTestWorkflowService(t, tx)

	bare := testutil.SeedIdea(t, ctx, tx, "still an idea")
	scripted := testutil.SeedIdea(t, ctx, tx, "has a script")
	testutil.SeedContent(t, ctx, tx, scripted.ID, types.ScriptStatusDraft)
	published := testutil.SeedIdea(t, ctx, tx, "already live")
	publishedContent := testutil.SeedContent(t, ctx, tx, published.ID, types.ScriptStatusCompleted)
	testutil.SeedProduction(t, ctx, tx, publishedContent.ID, types.ProductionStatusCompleted)
	testutil.SeedSocialPost(t, ctx, tx, publishedContent.ID, types.PostStatusPublished)

	items, err := svc.ListItems(ctx, "")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	stages := map[uuid.UUID]workflow.Stage{}
	for _, item := range items {
		stages[item.Idea.ID] = item.Stage
	}
	if stages[bare.ID] != workflow.StageIdea {
		t.Fatalf("bare idea stage = %q", stages[bare.ID])
	}
	if stages[scripted.ID] != workflow.StageScript {
		t.Fatalf("scripted idea stage = %q", stages[scripted.ID])
	}
	if stages[published.ID] != workflow.StagePublished {
		t.Fatalf("published idea stage = %q", stages[published.ID])
	}

	scriptItems, err := svc.ListItems(ctx, "script")
	if err != nil {
		t.Fatalf("ListItems(script): %v", err)
	}
	for _, item := range scriptItems {
		if item.Stage != workflow.StageScript {
			t.Fatalf("filter leak: %q", item.Stage)
		}
	}
	found := false
	for _, item := range scriptItems {
		if item.Idea.ID == scripted.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("scripted idea missing from filtered list")
	}

	if _, err := svc.ListItems(ctx, "bogus"); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation error for bad filter, got %v", err)
	}
}
