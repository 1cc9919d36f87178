package workflow

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SocialPost is the publication record, attached 1:1 to Content. It is the
// only chain record mutated in place: the terminal publish transition flips
// status to published instead of creating a new row.
type SocialPost struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ContentID uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null;column:content_id" json:"content_id"`
	Platforms datatypes.JSON `gorm:"type:jsonb;column:platforms" json:"platforms,omitempty"`
	PostType  string         `gorm:"column:post_type" json:"post_type"`
	PostDate  *time.Time     `gorm:"column:post_date" json:"post_date,omitempty"`
	Caption   string         `gorm:"column:caption" json:"caption"`
	Status    string         `gorm:"column:status" json:"status"`
	Approved  bool           `gorm:"not null;default:false;column:approved" json:"approved"`
	Notes     string         `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (SocialPost) TableName() string { return "social_post" }

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)
