package workflow

import (
	"time"

	"github.com/google/uuid"
)

// Content is the scripting/filming-readiness record, attached 1:1 to an Idea.
// Created exactly once when the Idea advances past the idea stage; the
// uniqueness of idea_id is a business rule enforced inside the advance
// transaction, the schema index is only a backstop.
type Content struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	IdeaID        uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null;column:idea_id" json:"idea_id"`
	Title         string     `gorm:"not null;column:title" json:"title"`
	ScriptStatus  string     `gorm:"column:script_status" json:"script_status"`
	ContentStatus string     `gorm:"column:content_status" json:"content_status"`
	DirectorID    *uuid.UUID `gorm:"type:uuid;index;column:director_id" json:"director_id,omitempty"`
	FilmingDate   *time.Time `gorm:"column:filming_date" json:"filming_date,omitempty"`
	Notes         string     `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Content) TableName() string { return "content" }

const (
	ScriptStatusDraft      = "draft"
	ScriptStatusInProgress = "in progress"
	ScriptStatusCompleted  = "completed"
)
