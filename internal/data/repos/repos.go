package repos

import (
	"gorm.io/gorm"

	"github.com/okaycreative/studioops/internal/data/repos/workflow"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

type IdeaRepo = workflow.IdeaRepo
type ContentRepo = workflow.ContentRepo
type ProductionRepo = workflow.ProductionRepo
type SocialPostRepo = workflow.SocialPostRepo

func NewIdeaRepo(db *gorm.DB, baseLog *logger.Logger) IdeaRepo {
	return workflow.NewIdeaRepo(db, baseLog)
}
func NewContentRepo(db *gorm.DB, baseLog *logger.Logger) ContentRepo {
	return workflow.NewContentRepo(db, baseLog)
}
func NewProductionRepo(db *gorm.DB, baseLog *logger.Logger) ProductionRepo {
	return workflow.NewProductionRepo(db, baseLog)
}
func NewSocialPostRepo(db *gorm.DB, baseLog *logger.Logger) SocialPostRepo {
	return workflow.NewSocialPostRepo(db, baseLog)
}
