package workflow

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/okaycreative/studioops/internal/domain"
	"github.com/okaycreative/studioops/internal/platform/dbctx"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

type IdeaRepo interface {
	Create(dbc dbctx.Context, ideas []*types.Idea) ([]*types.Idea, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Idea, error)
	// LockByID acquires a FOR UPDATE row lock; must be called with dbc.Tx set.
	LockByID(dbc dbctx.Context, id uuid.UUID) (*types.Idea, error)
	List(dbc dbctx.Context) ([]*types.Idea, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
}

type ideaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIdeaRepo(db *gorm.DB, baseLog *logger.Logger) IdeaRepo {
	return &ideaRepo{
		db:  db,
		log: baseLog.With("repo", "IdeaRepo"),
	}
}

func (r *ideaRepo) Create(dbc dbctx.Context, ideas []*types.Idea) ([]*types.Idea, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ideas) == 0 {
		return []*types.Idea{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *ideaRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Idea, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Idea
	err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
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

func (r *ideaRepo) LockByID(dbc dbctx.Context, id uuid.UUID) (*types.Idea, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var row types.Idea
	err := t.WithContext(dbc.Ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
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

func (r *ideaRepo) List(dbc dbctx.Context) ([]*types.Idea, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Idea
	if err := transaction.WithContext(dbc.Ctx).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ideaRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.Idea{}).
		Where("id = ?", id).
		Updates(updates).Error
}
