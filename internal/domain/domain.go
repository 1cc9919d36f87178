package domain

import (
	"github.com/okaycreative/studioops/internal/domain/workflow"
)

type Idea = workflow.Idea
type Content = workflow.Content
type Production = workflow.Production
type SocialPost = workflow.SocialPost

type Stage = workflow.Stage
type Pointers = workflow.Pointers
type Projection = workflow.Projection

const (
	StageIdea       = workflow.StageIdea
	StageScript     = workflow.StageScript
	StageProduction = workflow.StageProduction
	StageSocial     = workflow.StageSocial
	StagePublished  = workflow.StagePublished

	ScriptStatusDraft      = workflow.ScriptStatusDraft
	ScriptStatusInProgress = workflow.ScriptStatusInProgress
	ScriptStatusCompleted  = workflow.ScriptStatusCompleted

	ProductionStatusInProgress = workflow.ProductionStatusInProgress
	ProductionStatusCompleted  = workflow.ProductionStatusCompleted
	ProductionStatusBlocked    = workflow.ProductionStatusBlocked

	PostStatusDraft     = workflow.PostStatusDraft
	PostStatusScheduled = workflow.PostStatusScheduled
	PostStatusPublished = workflow.PostStatusPublished
)
