package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/types"
)

type ServiceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, services []*types.Service) ([]*types.Service, error)
	ListByMove(ctx context.Context, tx *gorm.DB, moveID uuid.UUID) ([]*types.Service, error)
	// GetOwned resolves a service only when the parent move belongs to userID.
	GetOwned(ctx context.Context, tx *gorm.DB, serviceID, userID uuid.UUID) (*types.Service, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, serviceID uuid.UUID, fields map[string]any) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, serviceID uuid.UUID) (int64, error)
}

type serviceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewServiceRepo(db *gorm.DB, baseLog *logger.Logger) ServiceRepo {
	repoLog := baseLog.With("repo", "ServiceRepo")
	return &serviceRepo{db: db, log: repoLog}
}

func (sr *serviceRepo) Create(ctx context.Context, tx *gorm.DB, services []*types.Service) ([]*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(services) == 0 {
		return []*types.Service{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (sr *serviceRepo) ListByMove(ctx context.Context, tx *gorm.DB, moveID uuid.UUID) ([]*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Service
	if err := transaction.WithContext(ctx).
		Where("move_id = ?", moveID).
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *serviceRepo) GetOwned(ctx context.Context, tx *gorm.DB, serviceID, userID uuid.UUID) (*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var svc types.Service
	if err := transaction.WithContext(ctx).
		Joins("JOIN moves ON moves.id = services.move_id").
		Where("services.id = ? AND moves.user_id = ?", serviceID, userID).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

func (sr *serviceRepo) UpdateFields(ctx context.Context, tx *gorm.DB, serviceID uuid.UUID, fields map[string]any) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	result := transaction.WithContext(ctx).
		Model(&types.Service{}).
		Where("id = ?", serviceID).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (sr *serviceRepo) Delete(ctx context.Context, tx *gorm.DB, serviceID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	result := transaction.WithContext(ctx).
		Where("id = ?", serviceID).
		Delete(&types.Service{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
