package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/okaycreative/studioops/internal/data/repos"
	"github.com/okaycreative/studioops/internal/data/repos/testutil"
	domainagg "github.com/okaycreative/studioops/internal/domain/aggregates"
	"github.com/okaycreative/studioops/internal/realtime"
)

func TestIdeaServiceCreate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	log := testutil.Logger(t)
	capture := &captureEmitter{}
	svc := NewIdeaService(log, repos.NewIdeaRepo(tx, log), NewWorkflowNotifier(log, capture))

	idea, err := svc.Create(ctx, CreateIdeaInput{Title: "  trailer concept  ", Priority: "high"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if idea.Title != "trailer concept" {
		t.Fatalf("title = %q", idea.Title)
	}
	if idea.Status != "new" {
		t.Fatalf("status = %q", idea.Status)
	}

	msgs := capture.all()
	if len(msgs) != 1 || msgs[0].Event != realtime.SSEEventIdeaCreated {
		t.Fatalf("notification = %+v", msgs)
	}

	if _, err := svc.Create(ctx, CreateIdeaInput{Title: "   "}); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestIdeaServiceReassign(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	log := testutil.Logger(t)
	capture := &captureEmitter{}
	svc := NewIdeaService(log, repos.NewIdeaRepo(tx, log), NewWorkflowNotifier(log, capture))

	idea := testutil.SeedIdea(t, ctx, tx, "reassign me")
	writer := uuid.New()

	updated, err := svc.Reassign(ctx, idea.ID, ReassignIdeaInput{ScriptWriterID: &writer})
	if err != nil {
		t.Fatalf("Reassign: %v", err)
	}
	if updated.ScriptWriterID == nil || *updated.ScriptWriterID != writer {
		t.Fatalf("script writer = %v", updated.ScriptWriterID)
	}

	msgs := capture.all()
	if len(msgs) != 1 || msgs[0].Event != realtime.SSEEventIdeaReassigned {
		t.Fatalf("notification = %+v", msgs)
	}

	if _, err := svc.Reassign(ctx, idea.ID, ReassignIdeaInput{}); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation error for empty input, got %v", err)
	}
	if _, err := svc.Reassign(ctx, uuid.New(), ReassignIdeaInput{ScriptWriterID: &writer}); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
