package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/types"
)

type RoomRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rooms []*types.Room) ([]*types.Room, error)
	ListByMove(ctx context.Context, tx *gorm.DB, moveID uuid.UUID) ([]*types.Room, error)
	// GetOwned resolves a room only when the parent move belongs to userID.
	GetOwned(ctx context.Context, tx *gorm.DB, roomID, userID uuid.UUID) (*types.Room, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, roomID uuid.UUID, fields map[string]any) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) (int64, error)
	// RecalcVolume re-derives rooms.volume as the sum of the room's furniture
	// volumes, 0 when no furniture remains.
	RecalcVolume(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) error
}

type roomRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoomRepo(db *gorm.DB, baseLog *logger.Logger) RoomRepo {
	repoLog := baseLog.With("repo", "RoomRepo")
	return &roomRepo{db: db, log: repoLog}
}

func (rr *roomRepo) Create(ctx context.Context, tx *gorm.DB, rooms []*types.Room) ([]*types.Room, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if len(rooms) == 0 {
		return []*types.Room{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (rr *roomRepo) ListByMove(ctx context.Context, tx *gorm.DB, moveID uuid.UUID) ([]*types.Room, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Room
	if err := transaction.WithContext(ctx).
		Where("move_id = ?", moveID).
		Order("name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *roomRepo) GetOwned(ctx context.Context, tx *gorm.DB, roomID, userID uuid.UUID) (*types.Room, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var room types.Room
	if err := transaction.WithContext(ctx).
		Joins("JOIN moves ON moves.id = rooms.move_id").
		Where("rooms.id = ? AND moves.user_id = ?", roomID, userID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (rr *roomRepo) UpdateFields(ctx context.Context, tx *gorm.DB, roomID uuid.UUID, fields map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	result := transaction.WithContext(ctx).
		Model(&types.Room{}).
		Where("id = ?", roomID).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (rr *roomRepo) Delete(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	result := transaction.WithContext(ctx).
		Where("id = ?", roomID).
		Delete(&types.Room{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (rr *roomRepo) RecalcVolume(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).Exec(`
		UPDATE rooms
		SET volume = (
			SELECT COALESCE(SUM(volume), 0)
			FROM furniture
			WHERE room_id = ?
		)
		WHERE id = ?
	`, roomID, roomID).Error
}
