package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okaycreative/studioops/internal/data/repos"
	types "github.com/okaycreative/studioops/internal/domain"
	domainagg "github.com/okaycreative/studioops/internal/domain/aggregates"
	"github.com/okaycreative/studioops/internal/platform/dbctx"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

type CreateIdeaInput struct {
	Title         string     `json:"title"`
	ContributorID *uuid.UUID `json:"contributor_id,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type ReassignIdeaInput struct {
	ContributorID  *uuid.UUID `json:"contributor_id,omitempty"`
	ScriptWriterID *uuid.UUID `json:"script_writer_id,omitempty"`
}

type IdeaService interface {
	Create(ctx context.Context, in CreateIdeaInput) (*types.Idea, error)
	List(ctx context.Context) ([]*types.Idea, error)
	Reassign(ctx context.Context, ideaID uuid.UUID, in ReassignIdeaInput) (*types.Idea, error)
}

type ideaService struct {
	log      *logger.Logger
	ideas    repos.IdeaRepo
	notifier WorkflowNotifier
}

func NewIdeaService(baseLog *logger.Logger, ideas repos.IdeaRepo, notifier WorkflowNotifier) IdeaService {
	return &ideaService{
		log:      baseLog.With("service", "IdeaService"),
		ideas:    ideas,
		notifier: notifier,
	}
}

func (s *ideaService) Create(ctx context.Context, in CreateIdeaInput) (*types.Idea, error) {
	const op = "Workflow.IdeaService.Create"
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "title must not be blank", nil)
	}

	now := time.Now().UTC()
	row := &types.Idea{
		ID:            uuid.New(),
		Title:         title,
		ContributorID: in.ContributorID,
		Status:        "new",
		Priority:      strings.TrimSpace(in.Priority),
		Deadline:      in.Deadline,
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := s.ideas.Create(dbctx.Context{Ctx: ctx}, []*types.Idea{row}); err != nil {
		return nil, domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
	s.log.Info("idea created", "ideaID", row.ID, "title", row.Title)

	if s.notifier != nil {
		s.notifier.IdeaCreated(ctx, IdeaCreatedEvent{IdeaID: row.ID, Title: row.Title})
	}
	return row, nil
}

func (s *ideaService) List(ctx context.Context) ([]*types.Idea, error) {
	const op = "Workflow.IdeaService.List"
	rows, err := s.ideas.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
	return rows, nil
}

func (s *ideaService) Reassign(ctx context.Context, ideaID uuid.UUID, in ReassignIdeaInput) (*types.Idea, error) {
	const op = "Workflow.IdeaService.Reassign"
	if ideaID == uuid.Nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "missing idea_id", nil)
	}
	if in.ContributorID == nil && in.ScriptWriterID == nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "nothing to reassign", nil)
	}

	dbc := dbctx.Context{Ctx: ctx}
	idea, err := s.ideas.GetByID(dbc, ideaID)
	if err != nil {
		return nil, domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
	if idea == nil {
		return nil, domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("idea not found: %s", ideaID), nil)
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if in.ContributorID != nil {
		updates["contributor_id"] = *in.ContributorID
		idea.ContributorID = in.ContributorID
	}
	if in.ScriptWriterID != nil {
		updates["script_writer_id"] = *in.ScriptWriterID
		idea.ScriptWriterID = in.ScriptWriterID
	}
	if err := s.ideas.UpdateFields(dbc, ideaID, updates); err != nil {
		return nil, domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
	s.log.Info("idea reassigned", "ideaID", ideaID)

	if s.notifier != nil {
		s.notifier.IdeaReassigned(ctx, IdeaReassignedEvent{
			IdeaID:         ideaID,
			ContributorID:  in.ContributorID,
			ScriptWriterID: in.ScriptWriterID,
		})
	}
	return idea, nil
}
