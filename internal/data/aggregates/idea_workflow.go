package aggregates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/okaycreative/studioops/internal/data/repos"
	types "github.com/okaycreative/studioops/internal/domain"
	domainagg "github.com/okaycreative/studioops/internal/domain/aggregates"
	"github.com/okaycreative/studioops/internal/domain/workflow"
	"github.com/okaycreative/studioops/internal/platform/dbctx"
)

var defaultPlatforms = datatypes.JSON([]byte(`["youtube"]`))

type IdeaWorkflowAggregateDeps struct {
	Base BaseDeps

	Ideas       repos.IdeaRepo
	Contents    repos.ContentRepo
	Productions repos.ProductionRepo
	SocialPosts repos.SocialPostRepo
}

type ideaWorkflowAggregate struct {
	deps IdeaWorkflowAggregateDeps
}

func NewIdeaWorkflowAggregate(deps IdeaWorkflowAggregateDeps) domainagg.IdeaWorkflowAggregate {
	deps.Base = deps.Base.withDefaults()
	return &ideaWorkflowAggregate{deps: deps}
}

func (a *ideaWorkflowAggregate) Contract() domainagg.Contract {
	return domainagg.IdeaWorkflowAggregateContract
}

// Advance moves an idea one stage forward inside a single transaction:
// lock the idea row, re-derive the chain state from the locked view,
// re-validate, then create the one missing child record (or publish the
// social post on the terminal transition). Concurrent calls on the same
// idea serialize on the row lock; the loser either takes the next branch
// or trips a uniqueness guard.
func (a *ideaWorkflowAggregate) Advance(ctx context.Context, in domainagg.AdvanceInput) (domainagg.AdvanceResult, error) {
	const op = "Workflow.IdeaWorkflow.Advance"
	var out domainagg.AdvanceResult

	if in.IdeaID == uuid.Nil {
		return out, domainagg.NewError(domainagg.CodeValidation, op, "missing idea_id", nil)
	}
	if a.deps.Ideas == nil || a.deps.Contents == nil || a.deps.Productions == nil || a.deps.SocialPosts == nil {
		return out, domainagg.NewError(domainagg.CodeInternal, op, "workflow aggregate repos not configured", nil)
	}
	now := in.Now.UTC()
	if now.IsZero() {
		now = time.Now().UTC()
	}
	note := strings.TrimSpace(in.Note)

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		idea, err := a.deps.Ideas.LockByID(dbc, in.IdeaID)
		if err != nil {
			return err
		}
		if idea == nil {
			return domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("idea not found: %s", in.IdeaID), nil)
		}

		// Pointers are re-derived under the lock; nothing caller-supplied
		// is trusted for the stage decision.
		proj, err := a.loadChain(dbc, idea)
		if err != nil {
			return err
		}
		previous := proj.Stage()

		if reasons := workflow.ValidateAdvance(proj); len(reasons) > 0 {
			return domainagg.NewPreconditionError(op, reasons)
		}

		switch {
		case proj.Content == nil:
			return a.advanceToScript(dbc, &out, idea, previous, note, now)
		case proj.Production == nil:
			return a.advanceToProduction(dbc, &out, idea, proj.Content, previous, note, now, in.ActorID)
		case proj.SocialPost == nil:
			return a.advanceToSocial(dbc, &out, idea, proj, previous, note, now)
		default:
			return a.publish(dbc, &out, idea, proj.SocialPost, previous, note, now)
		}
	})
	return out, err
}

func (a *ideaWorkflowAggregate) loadChain(dbc dbctx.Context, idea *types.Idea) (workflow.Projection, error) {
	proj := workflow.Projection{Idea: idea}
	content, err := a.deps.Contents.GetByIdeaID(dbc, idea.ID)
	if err != nil {
		return proj, err
	}
	proj.Content = content
	if content == nil {
		return proj, nil
	}
	production, err := a.deps.Productions.GetByContentID(dbc, content.ID)
	if err != nil {
		return proj, err
	}
	proj.Production = production
	post, err := a.deps.SocialPosts.GetByContentID(dbc, content.ID)
	if err != nil {
		return proj, err
	}
	proj.SocialPost = post
	return proj, nil
}

func (a *ideaWorkflowAggregate) advanceToScript(dbc dbctx.Context, out *domainagg.AdvanceResult, idea *types.Idea, previous workflow.Stage, note string, now time.Time) error {
	// Uniqueness is a business rule, not only a schema index: re-check
	// before inserting even under the lock (double-submission guard).
	exists, err := a.deps.Contents.ExistsByIdeaID(dbc, idea.ID)
	if err != nil {
		return err
	}
	if exists {
		return ConflictError("content already exists for this idea")
	}
	row := &types.Content{
		ID:           uuid.New(),
		IdeaID:       idea.ID,
		Title:        idea.Title,
		ScriptStatus: types.ScriptStatusDraft,
		Notes:        annotate("created on advance", note, now),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := a.deps.Contents.Create(dbc, []*types.Content{row}); err != nil {
		return err
	}
	if err := a.deps.Ideas.UpdateFields(dbc, idea.ID, map[string]interface{}{
		"status":     "in progress",
		"updated_at": now,
	}); err != nil {
		return err
	}
	*out = domainagg.AdvanceResult{
		IdeaID:          idea.ID,
		PreviousStage:   previous,
		NewStage:        workflow.StageScript,
		CreatedRecordID: &row.ID,
	}
	return nil
}

func (a *ideaWorkflowAggregate) advanceToProduction(dbc dbctx.Context, out *domainagg.AdvanceResult, idea *types.Idea, content *types.Content, previous workflow.Stage, note string, now time.Time, actorID *uuid.UUID) error {
	// Defense in depth: the validator has already checked these on the
	// locked view, but the branch re-asserts its own preconditions.
	if strings.TrimSpace(content.Title) == "" {
		return domainagg.NewPreconditionError("Workflow.IdeaWorkflow.Advance", []string{"content title must not be blank"})
	}
	switch strings.ToLower(strings.TrimSpace(content.ScriptStatus)) {
	case types.ScriptStatusDraft, types.ScriptStatusInProgress, types.ScriptStatusCompleted:
	default:
		return domainagg.NewPreconditionError("Workflow.IdeaWorkflow.Advance", []string{fmt.Sprintf("script status %q is not one of draft, in progress, completed", content.ScriptStatus)})
	}
	exists, err := a.deps.Productions.ExistsByContentID(dbc, content.ID)
	if err != nil {
		return err
	}
	if exists {
		return ConflictError("production already exists for this content")
	}
	row := &types.Production{
		ID:               uuid.New(),
		ContentID:        content.ID,
		EditorID:         actorID,
		ProductionStatus: types.ProductionStatusInProgress,
		Notes:            annotate("created on advance", note, now),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := a.deps.Productions.Create(dbc, []*types.Production{row}); err != nil {
		return err
	}
	if err := a.deps.Contents.UpdateFields(dbc, content.ID, map[string]interface{}{
		"content_status": "Completed",
		"updated_at":     now,
	}); err != nil {
		return err
	}
	*out = domainagg.AdvanceResult{
		IdeaID:          idea.ID,
		PreviousStage:   previous,
		NewStage:        workflow.StageProduction,
		CreatedRecordID: &row.ID,
	}
	return nil
}

func (a *ideaWorkflowAggregate) advanceToSocial(dbc dbctx.Context, out *domainagg.AdvanceResult, idea *types.Idea, proj workflow.Projection, previous workflow.Stage, note string, now time.Time) error {
	if strings.EqualFold(strings.TrimSpace(proj.Production.ProductionStatus), types.ProductionStatusBlocked) {
		return domainagg.NewPreconditionError("Workflow.IdeaWorkflow.Advance", []string{"production is blocked"})
	}
	// A post existing here means a duplicate call slipped past the lock
	// ordering or a caller retried after a partial success; surface it.
	exists, err := a.deps.SocialPosts.ExistsByContentID(dbc, proj.Content.ID)
	if err != nil {
		return err
	}
	if exists {
		return ConflictError("social post already exists for this content")
	}
	postDate := now
	row := &types.SocialPost{
		ID:        uuid.New(),
		ContentID: proj.Content.ID,
		Platforms: defaultPlatforms,
		Status:    types.PostStatusDraft,
		PostDate:  &postDate,
		Notes:     annotate("created on advance", note, now),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := a.deps.SocialPosts.Create(dbc, []*types.SocialPost{row}); err != nil {
		return err
	}
	if err := a.deps.Productions.UpdateFields(dbc, proj.Production.ID, map[string]interface{}{
		"production_status":   types.ProductionStatusCompleted,
		"completion_date":     now,
		"sent_to_social_team": true,
		"updated_at":          now,
	}); err != nil {
		return err
	}
	*out = domainagg.AdvanceResult{
		IdeaID:          idea.ID,
		PreviousStage:   previous,
		NewStage:        workflow.StageSocial,
		CreatedRecordID: &row.ID,
	}
	return nil
}

func (a *ideaWorkflowAggregate) publish(dbc dbctx.Context, out *domainagg.AdvanceResult, idea *types.Idea, post *types.SocialPost, previous workflow.Stage, note string, now time.Time) error {
	// Terminal transition mutates the existing post; no row is created.
	// A post already published never reaches here: the validator rejects it.
	notes := post.Notes
	audit := annotate("published", note, now)
	if strings.TrimSpace(notes) != "" {
		notes = notes + "\n" + audit
	} else {
		notes = audit
	}
	if err := a.deps.SocialPosts.UpdateFields(dbc, post.ID, map[string]interface{}{
		"status":     types.PostStatusPublished,
		"approved":   true,
		"post_date":  now,
		"notes":      notes,
		"updated_at": now,
	}); err != nil {
		return err
	}
	*out = domainagg.AdvanceResult{
		IdeaID:        idea.ID,
		PreviousStage: previous,
		NewStage:      workflow.StagePublished,
	}
	return nil
}

func annotate(action, note string, now time.Time) string {
	stamp := fmt.Sprintf("[%s %s]", action, now.Format(time.RFC3339))
	if note == "" {
		return stamp
	}
	return stamp + " " + note
}
