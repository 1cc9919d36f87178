package workflow

import "strings"

// Stage is the derived position of an Idea in the production pipeline.
// It is never persisted: it is recomputed from which child records exist,
// so it can never drift from the chain itself.
type Stage string

const (
	StageIdea       Stage = "idea"
	StageScript     Stage = "script"
	StageProduction Stage = "production"
	StageSocial     Stage = "social"
	StagePublished  Stage = "published"
)

// Pointers are the denormalized child ids for one idea, as observed at a
// single point in time (non-locking on the read path, re-derived under the
// row lock on the write path).
type Pointers struct {
	HasContent    bool
	HasProduction bool
	HasSocialPost bool
}

// InferStage maps child-record presence to the current stage. The check
// order is load-bearing: a row can carry stale lower-stage pointers, and the
// highest-stage pointer always wins.
func InferStage(p Pointers) Stage {
	switch {
	case p.HasSocialPost:
		return StageSocial
	case p.HasProduction:
		return StageProduction
	case p.HasContent:
		return StageScript
	default:
		return StageIdea
	}
}

// ParseStage normalizes a stage name from a query parameter. Returns false
// for anything outside the known stages.
func ParseStage(s string) (Stage, bool) {
	switch Stage(strings.ToLower(strings.TrimSpace(s))) {
	case StageIdea:
		return StageIdea, true
	case StageScript:
		return StageScript, true
	case StageProduction:
		return StageProduction, true
	case StageSocial:
		return StageSocial, true
	case StagePublished:
		return StagePublished, true
	default:
		return "", false
	}
}
