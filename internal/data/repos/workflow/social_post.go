package workflow

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/okaycreative/studioops/internal/domain"
	"github.com/okaycreative/studioops/internal/platform/dbctx"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

type SocialPostRepo interface {
	Create(dbc dbctx.Context, rows []*types.SocialPost) ([]*types.SocialPost, error)
	GetByContentID(dbc dbctx.Context, contentID uuid.UUID) (*types.SocialPost, error)
	GetByContentIDs(dbc dbctx.Context, contentIDs []uuid.UUID) ([]*types.SocialPost, error)
	ExistsByContentID(dbc dbctx.Context, contentID uuid.UUID) (bool, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
}

type socialPostRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSocialPostRepo(db *gorm.DB, baseLog *logger.Logger) SocialPostRepo {
	return &socialPostRepo{
		db:  db,
		log: baseLog.With("repo", "SocialPostRepo"),
	}
}

func (r *socialPostRepo) Create(dbc dbctx.Context, rows []*types.SocialPost) ([]*types.SocialPost, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.SocialPost{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *socialPostRepo) GetByContentID(dbc dbctx.Context, contentID uuid.UUID) (*types.SocialPost, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if contentID == uuid.Nil {
		return nil, nil
	}
	var row types.SocialPost
	err := transaction.WithContext(dbc.Ctx).
		Where("content_id = ?", contentID).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *socialPostRepo) GetByContentIDs(dbc dbctx.Context, contentIDs []uuid.UUID) ([]*types.SocialPost, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.SocialPost
	if len(contentIDs) == 0 {
		return out, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("content_id IN ?", contentIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *socialPostRepo) ExistsByContentID(dbc dbctx.Context, contentID uuid.UUID) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if contentID == uuid.Nil {
		return false, nil
	}
	var count int64
	err := transaction.WithContext(dbc.Ctx).
		Model(&types.SocialPost{}).
		Where("content_id = ?", contentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *socialPostRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.SocialPost{}).
		Where("id = ?", id).
		Updates(updates).Error
}
