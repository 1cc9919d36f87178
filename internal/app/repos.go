package app

import (
	"gorm.io/gorm"

	"github.com/okaycreative/studioops/internal/data/repos"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

type Repos struct {
	Idea       repos.IdeaRepo
	Content    repos.ContentRepo
	Production repos.ProductionRepo
	SocialPost repos.SocialPostRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Idea:       repos.NewIdeaRepo(db, log),
		Content:    repos.NewContentRepo(db, log),
		Production: repos.NewProductionRepo(db, log),
		SocialPost: repos.NewSocialPostRepo(db, log),
	}
}
