package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/types"
)

type MoveRepo interface {
	Create(ctx context.Context, tx *gorm.DB, moves []*types.Move) ([]*types.Move, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Move, error)
	// GetOwned returns nil (no error) when the move does not exist or is not
	// owned by userID; the two cases are indistinguishable on purpose.
	GetOwned(ctx context.Context, tx *gorm.DB, moveID, userID uuid.UUID) (*types.Move, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, moveID, userID uuid.UUID, fields map[string]any) (int64, error)
	DeleteOwned(ctx context.Context, tx *gorm.DB, moveID, userID uuid.UUID) (int64, error)
}

type moveRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMoveRepo(db *gorm.DB, baseLog *logger.Logger) MoveRepo {
	repoLog := baseLog.With("repo", "MoveRepo")
	return &moveRepo{db: db, log: repoLog}
}

func (mr *moveRepo) Create(ctx context.Context, tx *gorm.DB, moves []*types.Move) ([]*types.Move, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if len(moves) == 0 {
		return []*types.Move{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&moves).Error; err != nil {
		return nil, err
	}
	return moves, nil
}

func (mr *moveRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Move, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.Move
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *moveRepo) GetOwned(ctx context.Context, tx *gorm.DB, moveID, userID uuid.UUID) (*types.Move, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var move types.Move
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", moveID, userID).
		First(&move).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &move, nil
}

func (mr *moveRepo) UpdateFields(ctx context.Context, tx *gorm.DB, moveID, userID uuid.UUID, fields map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	result := transaction.WithContext(ctx).
		Model(&types.Move{}).
		Where("id = ? AND user_id = ?", moveID, userID).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (mr *moveRepo) DeleteOwned(ctx context.Context, tx *gorm.DB, moveID, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	result := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", moveID, userID).
		Delete(&types.Move{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
