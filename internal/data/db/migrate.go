package db

import (
	"gorm.io/gorm"

	types "github.com/okaycreative/studioops/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// content pipeline chain, in parent-before-child order
		&types.Idea{},
		&types.Content{},
		&types.Production{},
		&types.SocialPost{},
	)
}
