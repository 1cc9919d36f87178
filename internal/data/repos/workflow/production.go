package workflow

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/okaycreative/studioops/internal/domain"
	"github.com/okaycreative/studioops/internal/platform/dbctx"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

type ProductionRepo interface {
	Create(dbc dbctx.Context, rows []*types.Production) ([]*types.Production, error)
	GetByContentID(dbc dbctx.Context, contentID uuid.UUID) (*types.Production, error)
	GetByContentIDs(dbc dbctx.Context, contentIDs []uuid.UUID) ([]*types.Production, error)
	ExistsByContentID(dbc dbctx.Context, contentID uuid.UUID) (bool, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
}

type productionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductionRepo(db *gorm.DB, baseLog *logger.Logger) ProductionRepo {
	return &productionRepo{
		db:  db,
		log: baseLog.With("repo", "ProductionRepo"),
	}
}

func (r *productionRepo) Create(dbc dbctx.Context, rows []*types.Production) ([]*types.Production, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.Production{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *productionRepo) GetByContentID(dbc dbctx.Context, contentID uuid.UUID) (*types.Production, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if contentID == uuid.Nil {
		return nil, nil
	}
	var row types.Production
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

func (r *productionRepo) GetByContentIDs(dbc dbctx.Context, contentIDs []uuid.UUID) ([]*types.Production, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Production
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

func (r *productionRepo) ExistsByContentID(dbc dbctx.Context, contentID uuid.UUID) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if contentID == uuid.Nil {
		return false, nil
	}
	var count int64
	err := transaction.WithContext(dbc.Ctx).
		Model(&types.Production{}).
		Where("content_id = ?", contentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productionRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.Production{}).
		Where("id = ?", id).
		Updates(updates).Error
}
