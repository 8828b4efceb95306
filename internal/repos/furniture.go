package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/types"
)

type FurnitureRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.Furniture) ([]*types.Furniture, error)
	ListByRoom(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) ([]*types.Furniture, error)
	// GetOwned resolves a furniture item only when its room's move belongs to
	// userID.
	GetOwned(ctx context.Context, tx *gorm.DB, furnitureID, userID uuid.UUID) (*types.Furniture, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, furnitureID uuid.UUID, fields map[string]any) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, furnitureID uuid.UUID) (int64, error)
	DeleteByRoom(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) (int64, error)
}

type furnitureRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFurnitureRepo(db *gorm.DB, baseLog *logger.Logger) FurnitureRepo {
	repoLog := baseLog.With("repo", "FurnitureRepo")
	return &furnitureRepo{db: db, log: repoLog}
}

func (fr *furnitureRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.Furniture) ([]*types.Furniture, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if len(items) == 0 {
		return []*types.Furniture{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (fr *furnitureRepo) ListByRoom(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) ([]*types.Furniture, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []*types.Furniture
	if err := transaction.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *furnitureRepo) GetOwned(ctx context.Context, tx *gorm.DB, furnitureID, userID uuid.UUID) (*types.Furniture, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var item types.Furniture
	if err := transaction.WithContext(ctx).
		Joins("JOIN rooms ON rooms.id = furniture.room_id").
		Joins("JOIN moves ON moves.id = rooms.move_id").
		Where("furniture.id = ? AND moves.user_id = ?", furnitureID, userID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (fr *furnitureRepo) UpdateFields(ctx context.Context, tx *gorm.DB, furnitureID uuid.UUID, fields map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	result := transaction.WithContext(ctx).
		Model(&types.Furniture{}).
		Where("id = ?", furnitureID).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (fr *furnitureRepo) Delete(ctx context.Context, tx *gorm.DB, furnitureID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	result := transaction.WithContext(ctx).
		Where("id = ?", furnitureID).
		Delete(&types.Furniture{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (fr *furnitureRepo) DeleteByRoom(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	result := transaction.WithContext(ctx).
		Where("room_id = ?", roomID).
		Delete(&types.Furniture{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
