package workflow

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/okaycreative/studioops/internal/domain"
	"github.com/okaycreative/studioops/internal/platform/dbctx"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

type ContentRepo interface {
	Create(dbc dbctx.Context, rows []*types.Content) ([]*types.Content, error)
	GetByIdeaID(dbc dbctx.Context, ideaID uuid.UUID) (*types.Content, error)
	GetByIdeaIDs(dbc dbctx.Context, ideaIDs []uuid.UUID) ([]*types.Content, error)
	ExistsByIdeaID(dbc dbctx.Context, ideaID uuid.UUID) (bool, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
}

type contentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentRepo(db *gorm.DB, baseLog *logger.Logger) ContentRepo {
	return &contentRepo{
		db:  db,
		log: baseLog.With("repo", "ContentRepo"),
	}
}

func (r *contentRepo) Create(dbc dbctx.Context, rows []*types.Content) ([]*types.Content, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.Content{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *contentRepo) GetByIdeaID(dbc dbctx.Context, ideaID uuid.UUID) (*types.Content, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if ideaID == uuid.Nil {
		return nil, nil
	}
	var row types.Content
	err := transaction.WithContext(dbc.Ctx).
		Where("idea_id = ?", ideaID).
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

func (r *contentRepo) GetByIdeaIDs(dbc dbctx.Context, ideaIDs []uuid.UUID) ([]*types.Content, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Content
	if len(ideaIDs) == 0 {
		return out, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("idea_id IN ?", ideaIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentRepo) ExistsByIdeaID(dbc dbctx.Context, ideaID uuid.UUID) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if ideaID == uuid.Nil {
		return false, nil
	}
	var count int64
	err := transaction.WithContext(dbc.Ctx).
		Model(&types.Content{}).
		Where("idea_id = ?", ideaID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *contentRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.Content{}).
		Where("id = ?", id).
		Updates(updates).Error
}
