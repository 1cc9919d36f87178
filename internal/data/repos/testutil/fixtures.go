package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/okaycreative/studioops/internal/domain"
)

func PtrUUID(id uuid.UUID) *uuid.UUID { return &id }

func SeedIdea(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *types.Idea {
	tb.Helper()
	contributor := uuid.New()
	row := &types.Idea{
		ID:            uuid.New(),
		Title:         title,
		ContributorID: &contributor,
		Status:        "approved",
		Priority:      "normal",
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed idea: %v", err)
	}
	return row
}

func SeedContent(tb testing.TB, ctx context.Context, tx *gorm.DB, ideaID uuid.UUID, scriptStatus string) *types.Content {
	tb.Helper()
	row := &types.Content{
		ID:           uuid.New(),
		IdeaID:       ideaID,
		Title:        "seeded content",
		ScriptStatus: scriptStatus,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed content: %v", err)
	}
	return row
}

func SeedProduction(tb testing.TB, ctx context.Context, tx *gorm.DB, contentID uuid.UUID, status string) *types.Production {
	tb.Helper()
	editor := uuid.New()
	row := &types.Production{
		ID:               uuid.New(),
		ContentID:        contentID,
		EditorID:         &editor,
		ProductionStatus: status,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed production: %v", err)
	}
	return row
}

func SeedSocialPost(tb testing.TB, ctx context.Context, tx *gorm.DB, contentID uuid.UUID, status string) *types.SocialPost {
	tb.Helper()
	now := time.Now().UTC()
	row := &types.SocialPost{
		ID:        uuid.New(),
		ContentID: contentID,
		Status:    status,
		PostDate:  &now,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed social post: %v", err)
	}
	return row
}
