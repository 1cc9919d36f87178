package workflow

import (
	"fmt"
	"strings"
)

// ValidateAdvance checks whether the item satisfies the preconditions to
// advance out of its current stage. An empty result means it may advance.
// Each failing rule contributes one human-readable message; callers surface
// a non-empty list as a missing-prerequisite failure.
//
// The read path evaluates this against a possibly stale projection; the
// advancement engine re-runs it against the freshly locked rows before
// mutating anything.
func ValidateAdvance(p Projection) []string {
	var reasons []string

	if p.Idea == nil {
		return []string{"idea does not exist"}
	}

	switch InferStage(p.Pointers()) {
	case StageIdea:
		if strings.TrimSpace(p.Idea.Title) == "" {
			reasons = append(reasons, "idea title must not be blank")
		}

	case StageScript:
		if p.Content == nil {
			reasons = append(reasons, "content record is missing")
			break
		}
		if strings.TrimSpace(p.Content.Title) == "" {
			reasons = append(reasons, "content title must not be blank")
		}
		if !statusIn(p.Content.ScriptStatus, ScriptStatusDraft, ScriptStatusInProgress, ScriptStatusCompleted) {
			reasons = append(reasons, fmt.Sprintf("script status %q is not one of draft, in progress, completed", p.Content.ScriptStatus))
		}

	case StageProduction:
		if p.Production == nil {
			reasons = append(reasons, "production record is missing")
			break
		}
		if statusIn(p.Production.ProductionStatus, ProductionStatusBlocked) {
			reasons = append(reasons, "production is blocked")
		}

	case StageSocial:
		if p.SocialPost == nil {
			reasons = append(reasons, "social post record is missing")
			break
		}
		if !statusIn(p.SocialPost.Status, PostStatusDraft, PostStatusScheduled) {
			reasons = append(reasons, fmt.Sprintf("social post status %q is not publishable", p.SocialPost.Status))
		}
	}

	return reasons
}

func statusIn(current string, allowed ...string) bool {
	current = strings.TrimSpace(current)
	for _, s := range allowed {
		if strings.EqualFold(current, s) {
			return true
		}
	}
	return false
}
