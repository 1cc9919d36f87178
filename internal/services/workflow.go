package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okaycreative/studioops/internal/data/repos"
	types "github.com/okaycreative/studioops/internal/domain"
	domainagg "github.com/okaycreative/studioops/internal/domain/aggregates"
	"github.com/okaycreative/studioops/internal/domain/workflow"
	"github.com/okaycreative/studioops/internal/platform/dbctx"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

// WorkflowItem is the read-model row the API serves: the projection plus the
// derived stage and whether an advance would currently succeed.
type WorkflowItem struct {
	workflow.Projection
	Stage          workflow.Stage `json:"stage"`
	CanMoveForward bool           `json:"can_move_forward"`
	BlockedReasons []string       `json:"blocked_reasons,omitempty"`
}

type WorkflowService interface {
	GetItem(ctx context.Context, ideaID uuid.UUID) (*WorkflowItem, error)
	ListItems(ctx context.Context, stageFilter string) ([]*WorkflowItem, error)
}

type workflowService struct {
	log         *logger.Logger
	ideas       repos.IdeaRepo
	contents    repos.ContentRepo
	productions repos.ProductionRepo
	socialPosts repos.SocialPostRepo
}

func NewWorkflowService(
	baseLog *logger.Logger,
	ideas repos.IdeaRepo,
	contents repos.ContentRepo,
	productions repos.ProductionRepo,
	socialPosts repos.SocialPostRepo,
) WorkflowService {
	return &workflowService{
		log:         baseLog.With("service", "WorkflowService"),
		ideas:       ideas,
		contents:    contents,
		productions: productions,
		socialPosts: socialPosts,
	}
}

func (s *workflowService) GetItem(ctx context.Context, ideaID uuid.UUID) (*WorkflowItem, error) {
	const op = "Workflow.WorkflowService.GetItem"
	if ideaID == uuid.Nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "missing idea_id", nil)
	}
	dbc := dbctx.Context{Ctx: ctx}

	idea, err := s.ideas.GetByID(dbc, ideaID)
	if err != nil {
		return nil, domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
	if idea == nil {
		return nil, domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("idea not found: %s", ideaID), nil)
	}

	proj := workflow.Projection{Idea: idea}
	content, err := s.contents.GetByIdeaID(dbc, idea.ID)
	if err != nil {
		return nil, domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
	proj.Content = content
	if content != nil {
		g, gctx := errgroup.WithContext(ctx)
		gdbc := dbctx.Context{Ctx: gctx}
		g.Go(func() error {
			production, err := s.productions.GetByContentID(gdbc, content.ID)
			if err != nil {
				return err
			}
			proj.Production = production
			return nil
		})
		g.Go(func() error {
			post, err := s.socialPosts.GetByContentID(gdbc, content.ID)
			if err != nil {
				return err
			}
			proj.SocialPost = post
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, domainagg.Wrap(domainagg.CodeInternal, op, err)
		}
	}

	return buildItem(proj), nil
}

func (s *workflowService) ListItems(ctx context.Context, stageFilter string) ([]*WorkflowItem, error) {
	const op = "Workflow.WorkflowService.ListItems"

	var filter workflow.Stage
	if strings.TrimSpace(stageFilter) != "" {
		parsed, ok := workflow.ParseStage(stageFilter)
		if !ok {
			return nil, domainagg.NewError(domainagg.CodeValidation, op, fmt.Sprintf("unknown stage: %q", stageFilter), nil)
		}
		filter = parsed
	}

	dbc := dbctx.Context{Ctx: ctx}
	ideas, err := s.ideas.List(dbc)
	if err != nil {
		return nil, domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
	if len(ideas) == 0 {
		return []*WorkflowItem{}, nil
	}

	ideaIDs := make([]uuid.UUID, 0, len(ideas))
	for _, idea := range ideas {
		ideaIDs = append(ideaIDs, idea.ID)
	}
	contents, err := s.contents.GetByIdeaIDs(dbc, ideaIDs)
	if err != nil {
		return nil, domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
	contentByIdea := make(map[uuid.UUID]*types.Content, len(contents))
	contentIDs := make([]uuid.UUID, 0, len(contents))
	for _, c := range contents {
		contentByIdea[c.IdeaID] = c
		contentIDs = append(contentIDs, c.ID)
	}

	// Productions and posts hang off the same content set; fetch both
	// batches concurrently.
	productionByContent := make(map[uuid.UUID]*types.Production, len(contentIDs))
	postByContent := make(map[uuid.UUID]*types.SocialPost, len(contentIDs))
	if len(contentIDs) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		gdbc := dbctx.Context{Ctx: gctx}
		g.Go(func() error {
			productions, err := s.productions.GetByContentIDs(gdbc, contentIDs)
			if err != nil {
				return err
			}
			for _, p := range productions {
				productionByContent[p.ContentID] = p
			}
			return nil
		})
		g.Go(func() error {
			posts, err := s.socialPosts.GetByContentIDs(gdbc, contentIDs)
			if err != nil {
				return err
			}
			for _, p := range posts {
				postByContent[p.ContentID] = p
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, domainagg.Wrap(domainagg.CodeInternal, op, err)
		}
	}

	items := make([]*WorkflowItem, 0, len(ideas))
	for _, idea := range ideas {
		proj := workflow.Projection{Idea: idea}
		if c, ok := contentByIdea[idea.ID]; ok {
			proj.Content = c
			proj.Production = productionByContent[c.ID]
			proj.SocialPost = postByContent[c.ID]
		}
		item := buildItem(proj)
		if filter != "" && item.Stage != filter {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func buildItem(proj workflow.Projection) *WorkflowItem {
	item := &WorkflowItem{
		Projection: proj,
		Stage:      proj.Stage(),
	}
	if item.Stage != workflow.StagePublished {
		reasons := workflow.ValidateAdvance(proj)
		item.CanMoveForward = len(reasons) == 0
		item.BlockedReasons = reasons
	}
	return item
}
