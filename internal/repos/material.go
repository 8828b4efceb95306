package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/types"
)

type MaterialRepo interface {
	Create(ctx context.Context, tx *gorm.DB, materials []*types.Material) ([]*types.Material, error)
	ListByMove(ctx context.Context, tx *gorm.DB, moveID uuid.UUID) ([]*types.Material, error)
}

type materialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMaterialRepo(db *gorm.DB, baseLog *logger.Logger) MaterialRepo {
	repoLog := baseLog.With("repo", "MaterialRepo")
	return &materialRepo{db: db, log: repoLog}
}

func (mr *materialRepo) Create(ctx context.Context, tx *gorm.DB, materials []*types.Material) ([]*types.Material, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if len(materials) == 0 {
		return []*types.Material{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (mr *materialRepo) ListByMove(ctx context.Context, tx *gorm.DB, moveID uuid.UUID) ([]*types.Material, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.Material
	if err := transaction.WithContext(ctx).
		Where("move_id = ?", moveID).
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
