package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/types"
)

// CatalogRepo reads the static reference catalogs. Global data, no ownership
// scoping.
type CatalogRepo interface {
	ListRoomTypes(ctx context.Context, tx *gorm.DB) ([]*types.RoomType, error)
	ListFurnitureCategories(ctx context.Context, tx *gorm.DB) ([]*types.FurnitureCategory, error)
}

type catalogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCatalogRepo(db *gorm.DB, baseLog *logger.Logger) CatalogRepo {
	repoLog := baseLog.With("repo", "CatalogRepo")
	return &catalogRepo{db: db, log: repoLog}
}

func (cr *catalogRepo) ListRoomTypes(ctx context.Context, tx *gorm.DB) ([]*types.RoomType, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.RoomType
	if err := transaction.WithContext(ctx).
		Order("name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *catalogRepo) ListFurnitureCategories(ctx context.Context, tx *gorm.DB) ([]*types.FurnitureCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.FurnitureCategory
	if err := transaction.WithContext(ctx).
		Order("name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
