package workflow

import (
	"time"

	"github.com/google/uuid"
)

// Production is the editing-stage record, attached 1:1 to Content.
type Production struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ContentID        uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null;column:content_id" json:"content_id"`
	EditorID         *uuid.UUID `gorm:"type:uuid;index;column:editor_id" json:"editor_id,omitempty"`
	ProductionStatus string     `gorm:"column:production_status" json:"production_status"`
	CompletionDate   *time.Time `gorm:"column:completion_date" json:"completion_date,omitempty"`
	SentToSocialTeam bool       `gorm:"not null;default:false;column:sent_to_social_team" json:"sent_to_social_team"`
	Notes            string     `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Production) TableName() string { return "production" }

const (
	ProductionStatusInProgress = "in progress"
	ProductionStatusCompleted  = "completed"
	ProductionStatusBlocked    = "blocked"
)
