package workflow

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Idea is the root record of the content pipeline. It is created by a user
// and never deleted by the advancement engine.
type Idea struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title          string     `gorm:"not null;column:title" json:"title"`
	ContributorID  *uuid.UUID `gorm:"type:uuid;index;column:contributor_id" json:"contributor_id,omitempty"`
	ScriptWriterID *uuid.UUID `gorm:"type:uuid;index;column:script_writer_id" json:"script_writer_id,omitempty"`
	Status         string     `gorm:"column:status" json:"status"`
	Priority       string     `gorm:"column:priority" json:"priority"`
	Deadline       *time.Time `gorm:"column:deadline" json:"deadline,omitempty"`
	Notes          string     `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Idea) TableName() string { return "idea" }
