package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/normalization"
	"github.com/umzugo/packapp-backend/internal/repos"
	"github.com/umzugo/packapp-backend/internal/types"
)

type ServiceCreate struct {
	ServiceType string
	Quantity    int
	Price       decimal.Decimal
}

// ServiceUpdate carries optional fields; nil means "leave unchanged".
type ServiceUpdate struct {
	Quantity *int
	Price    *decimal.Decimal
}

type MaterialCreate struct {
	MaterialType string
	Quantity     int
	PricePerUnit decimal.Decimal
}

// ExtrasService covers the ancillary booking lines on a move: booked
// services and packing materials.
type ExtrasService interface {
	ListServices(ctx context.Context, userID, moveID uuid.UUID) ([]*types.Service, error)
	AddService(ctx context.Context, userID, moveID uuid.UUID, in ServiceCreate) (*types.Service, error)
	UpdateService(ctx context.Context, userID, serviceID uuid.UUID, upd ServiceUpdate) (*types.Service, error)
	DeleteService(ctx context.Context, userID, serviceID uuid.UUID) error
	ListMaterials(ctx context.Context, userID, moveID uuid.UUID) ([]*types.Material, error)
	AddMaterial(ctx context.Context, userID, moveID uuid.UUID, in MaterialCreate) (*types.Material, error)
}

type extrasService struct {
	db           *gorm.DB
	log          *logger.Logger
	moveRepo     repos.MoveRepo
	serviceRepo  repos.ServiceRepo
	materialRepo repos.MaterialRepo
}

func NewExtrasService(
	db *gorm.DB,
	baseLog *logger.Logger,
	moveRepo repos.MoveRepo,
	serviceRepo repos.ServiceRepo,
	materialRepo repos.MaterialRepo,
) ExtrasService {
	serviceLog := baseLog.With("service", "ExtrasService")
	return &extrasService{
		db:           db,
		log:          serviceLog,
		moveRepo:     moveRepo,
		serviceRepo:  serviceRepo,
		materialRepo: materialRepo,
	}
}

func (es *extrasService) requireMove(ctx context.Context, userID, moveID uuid.UUID) error {
	move, err := es.moveRepo.GetOwned(ctx, nil, moveID, userID)
	if err != nil {
		es.log.Error("Move ownership check failed", "error", err, "move_id", moveID)
		return fmt.Errorf("check move ownership: %w", err)
	}
	if move == nil {
		return ErrNotFound
	}
	return nil
}

func (es *extrasService) ListServices(ctx context.Context, userID, moveID uuid.UUID) ([]*types.Service, error) {
	if err := es.requireMove(ctx, userID, moveID); err != nil {
		return nil, err
	}
	services, err := es.serviceRepo.ListByMove(ctx, nil, moveID)
	if err != nil {
		es.log.Error("ListServices failed", "error", err, "move_id", moveID)
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (es *extrasService) AddService(ctx context.Context, userID, moveID uuid.UUID, in ServiceCreate) (*types.Service, error) {
	in.ServiceType = normalization.TrimInputString(in.ServiceType)
	if in.ServiceType == "" {
		return nil, validationf("service_type is required")
	}
	if in.Quantity < 1 {
		return nil, validationf("quantity must be at least 1")
	}
	if in.Price.IsNegative() {
		return nil, validationf("price must not be negative")
	}
	if err := es.requireMove(ctx, userID, moveID); err != nil {
		return nil, err
	}
	svc := &types.Service{
		ID:          uuid.New(),
		MoveID:      moveID,
		ServiceType: in.ServiceType,
		Quantity:    in.Quantity,
		Price:       in.Price,
	}
	if _, err := es.serviceRepo.Create(ctx, nil, []*types.Service{svc}); err != nil {
		es.log.Error("AddService failed", "error", err, "move_id", moveID)
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (es *extrasService) UpdateService(ctx context.Context, userID, serviceID uuid.UUID, upd ServiceUpdate) (*types.Service, error) {
	fields := map[string]any{}
	if upd.Quantity != nil {
		if *upd.Quantity < 1 {
			return nil, validationf("quantity must be at least 1")
		}
		fields["quantity"] = *upd.Quantity
	}
	if upd.Price != nil {
		if upd.Price.IsNegative() {
			return nil, validationf("price must not be negative")
		}
		fields["price"] = *upd.Price
	}
	if len(fields) == 0 {
		return nil, validationf("no fields to update")
	}

	svc, err := es.serviceRepo.GetOwned(ctx, nil, serviceID, userID)
	if err != nil {
		es.log.Error("UpdateService ownership check failed", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("check service ownership: %w", err)
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	if _, err := es.serviceRepo.UpdateFields(ctx, nil, serviceID, fields); err != nil {
		es.log.Error("UpdateService failed", "error", err, "service_id", serviceID)
		return nil, fmt.Errorf("update service: %w", err)
	}
	if upd.Quantity != nil {
		svc.Quantity = *upd.Quantity
	}
	if upd.Price != nil {
		svc.Price = *upd.Price
	}
	return svc, nil
}

func (es *extrasService) DeleteService(ctx context.Context, userID, serviceID uuid.UUID) error {
	svc, err := es.serviceRepo.GetOwned(ctx, nil, serviceID, userID)
	if err != nil {
		es.log.Error("DeleteService ownership check failed", "error", err, "service_id", serviceID)
		return fmt.Errorf("check service ownership: %w", err)
	}
	if svc == nil {
		return ErrNotFound
	}
	if _, err := es.serviceRepo.Delete(ctx, nil, serviceID); err != nil {
		es.log.Error("DeleteService failed", "error", err, "service_id", serviceID)
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func (es *extrasService) ListMaterials(ctx context.Context, userID, moveID uuid.UUID) ([]*types.Material, error) {
	if err := es.requireMove(ctx, userID, moveID); err != nil {
		return nil, err
	}
	materials, err := es.materialRepo.ListByMove(ctx, nil, moveID)
	if err != nil {
		es.log.Error("ListMaterials failed", "error", err, "move_id", moveID)
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

func (es *extrasService) AddMaterial(ctx context.Context, userID, moveID uuid.UUID, in MaterialCreate) (*types.Material, error) {
	in.MaterialType = normalization.TrimInputString(in.MaterialType)
	if in.MaterialType == "" {
		return nil, validationf("material_type is required")
	}
	if in.Quantity < 0 {
		return nil, validationf("quantity must not be negative")
	}
	if in.PricePerUnit.IsNegative() {
		return nil, validationf("price_per_unit must not be negative")
	}
	if err := es.requireMove(ctx, userID, moveID); err != nil {
		return nil, err
	}
	material := &types.Material{
		ID:           uuid.New(),
		MoveID:       moveID,
		MaterialType: in.MaterialType,
		Quantity:     in.Quantity,
		PricePerUnit: in.PricePerUnit,
		TotalPrice:   in.PricePerUnit.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}
	if _, err := es.materialRepo.Create(ctx, nil, []*types.Material{material}); err != nil {
		es.log.Error("AddMaterial failed", "error", err, "move_id", moveID)
		return nil, fmt.Errorf("create material: %w", err)
	}
	return material, nil
}
