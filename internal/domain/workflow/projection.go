package workflow

import "strings"

// Projection is the full cross-stage view of one idea: the idea row plus its
// nullable children. Both the read path (listings, detail) and the write path
// (re-validation under lock) operate on this shape so the two can never
// disagree about what the current stage is.
type Projection struct {
	Idea       *Idea       `json:"idea"`
	Content    *Content    `json:"content,omitempty"`
	Production *Production `json:"production,omitempty"`
	SocialPost *SocialPost `json:"social_post,omitempty"`
}

func (p Projection) Pointers() Pointers {
	return Pointers{
		HasContent:    p.Content != nil,
		HasProduction: p.Production != nil,
		HasSocialPost: p.SocialPost != nil,
	}
}

// Stage reports the pipeline position, including the terminal published
// state once the social post has been published.
func (p Projection) Stage() Stage {
	s := InferStage(p.Pointers())
	if s == StageSocial && p.SocialPost != nil &&
		strings.EqualFold(strings.TrimSpace(p.SocialPost.Status), PostStatusPublished) {
		return StagePublished
	}
	return s
}

// CanMoveForward reports whether the item would pass validation for its
// current stage. Published items never move forward.
func (p Projection) CanMoveForward() bool {
	if p.Idea == nil || p.Stage() == StagePublished {
		return false
	}
	return len(ValidateAdvance(p)) == 0
}
