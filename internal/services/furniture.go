package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/normalization"
	"github.com/umzugo/packapp-backend/internal/repos"
	"github.com/umzugo/packapp-backend/internal/types"
)

// FurnitureAttrs is the full attribute set expected on create and on every
// update; furniture updates replace all dimension fields, there is no
// partial merge.
type FurnitureAttrs struct {
	Name     string
	Category string
	Length   float64
	Width    float64
	Height   float64
	Quantity int
	Weight   float64
	IsCustom bool
}

type FurnitureService interface {
	ListCategories(ctx context.Context) ([]*types.FurnitureCategory, error)
	ListFurniture(ctx context.Context, userID, roomID uuid.UUID) ([]*types.Furniture, error)
	CreateFurniture(ctx context.Context, userID, roomID uuid.UUID, attrs FurnitureAttrs) (*types.Furniture, error)
	UpdateFurniture(ctx context.Context, userID, furnitureID uuid.UUID, attrs FurnitureAttrs) (*types.Furniture, error)
	DeleteFurniture(ctx context.Context, userID, furnitureID uuid.UUID) error
}

type furnitureService struct {
	db            *gorm.DB
	log           *logger.Logger
	roomRepo      repos.RoomRepo
	furnitureRepo repos.FurnitureRepo
	catalogRepo   repos.CatalogRepo
}

func NewFurnitureService(
	db *gorm.DB,
	baseLog *logger.Logger,
	roomRepo repos.RoomRepo,
	furnitureRepo repos.FurnitureRepo,
	catalogRepo repos.CatalogRepo,
) FurnitureService {
	serviceLog := baseLog.With("service", "FurnitureService")
	return &furnitureService{
		db:            db,
		log:           serviceLog,
		roomRepo:      roomRepo,
		furnitureRepo: furnitureRepo,
		catalogRepo:   catalogRepo,
	}
}

func validateFurnitureAttrs(attrs *FurnitureAttrs) error {
	attrs.Name = normalization.TrimInputString(attrs.Name)
	attrs.Category = normalization.TrimInputString(attrs.Category)
	if attrs.Name == "" {
		return validationf("name is required")
	}
	if attrs.Category == "" {
		return validationf("category is required")
	}
	if attrs.Length <= 0 || attrs.Width <= 0 || attrs.Height <= 0 {
		return validationf("length, width and height must be greater than zero")
	}
	if attrs.Quantity <= 0 {
		return validationf("quantity must be greater than zero")
	}
	if attrs.Weight < 0 {
		return validationf("weight must not be negative")
	}
	return nil
}

func (fs *furnitureService) ListCategories(ctx context.Context) ([]*types.FurnitureCategory, error) {
	categories, err := fs.catalogRepo.ListFurnitureCategories(ctx, nil)
	if err != nil {
		fs.log.Error("ListCategories failed", "error", err)
		return nil, fmt.Errorf("list furniture categories: %w", err)
	}
	return categories, nil
}

func (fs *furnitureService) ListFurniture(ctx context.Context, userID, roomID uuid.UUID) ([]*types.Furniture, error) {
	room, err := fs.roomRepo.GetOwned(ctx, nil, roomID, userID)
	if err != nil {
		fs.log.Error("ListFurniture ownership check failed", "error", err, "room_id", roomID)
		return nil, fmt.Errorf("check room ownership: %w", err)
	}
	if room == nil {
		return nil, ErrNotFound
	}
	items, err := fs.furnitureRepo.ListByRoom(ctx, nil, roomID)
	if err != nil {
		fs.log.Error("ListFurniture failed", "error", err, "room_id", roomID)
		return nil, fmt.Errorf("list furniture: %w", err)
	}
	return items, nil
}

func (fs *furnitureService) CreateFurniture(ctx context.Context, userID, roomID uuid.UUID, attrs FurnitureAttrs) (*types.Furniture, error) {
	if err := validateFurnitureAttrs(&attrs); err != nil {
		return nil, err
	}
	room, err := fs.roomRepo.GetOwned(ctx, nil, roomID, userID)
	if err != nil {
		fs.log.Error("CreateFurniture ownership check failed", "error", err, "room_id", roomID)
		return nil, fmt.Errorf("check room ownership: %w", err)
	}
	if room == nil {
		return nil, ErrNotFound
	}

	item := &types.Furniture{
		ID:       uuid.New(),
		RoomID:   roomID,
		Name:     attrs.Name,
		Category: attrs.Category,
		Length:   attrs.Length,
		Width:    attrs.Width,
		Height:   attrs.Height,
		Quantity: attrs.Quantity,
		Weight:   attrs.Weight,
		Volume:   types.FurnitureVolume(attrs.Length, attrs.Width, attrs.Height, attrs.Quantity),
		IsCustom: attrs.IsCustom,
	}
	if _, err := fs.furnitureRepo.Create(ctx, nil, []*types.Furniture{item}); err != nil {
		fs.log.Error("CreateFurniture failed", "error", err, "room_id", roomID)
		return nil, fmt.Errorf("create furniture: %w", err)
	}
	if err := fs.roomRepo.RecalcVolume(ctx, nil, roomID); err != nil {
		fs.log.Error("CreateFurniture volume recalc failed", "error", err, "room_id", roomID)
		return nil, fmt.Errorf("recalculate room volume: %w", err)
	}
	return item, nil
}

func (fs *furnitureService) UpdateFurniture(ctx context.Context, userID, furnitureID uuid.UUID, attrs FurnitureAttrs) (*types.Furniture, error) {
	if err := validateFurnitureAttrs(&attrs); err != nil {
		return nil, err
	}
	item, err := fs.furnitureRepo.GetOwned(ctx, nil, furnitureID, userID)
	if err != nil {
		fs.log.Error("UpdateFurniture ownership check failed", "error", err, "furniture_id", furnitureID)
		return nil, fmt.Errorf("check furniture ownership: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	volume := types.FurnitureVolume(attrs.Length, attrs.Width, attrs.Height, attrs.Quantity)
	fields := map[string]any{
		"name":      attrs.Name,
		"category":  attrs.Category,
		"length":    attrs.Length,
		"width":     attrs.Width,
		"height":    attrs.Height,
		"quantity":  attrs.Quantity,
		"weight":    attrs.Weight,
		"volume":    volume,
		"is_custom": attrs.IsCustom,
	}
	if _, err := fs.furnitureRepo.UpdateFields(ctx, nil, furnitureID, fields); err != nil {
		fs.log.Error("UpdateFurniture failed", "error", err, "furniture_id", furnitureID)
		return nil, fmt.Errorf("update furniture: %w", err)
	}
	if err := fs.roomRepo.RecalcVolume(ctx, nil, item.RoomID); err != nil {
		fs.log.Error("UpdateFurniture volume recalc failed", "error", err, "room_id", item.RoomID)
		return nil, fmt.Errorf("recalculate room volume: %w", err)
	}

	item.Name = attrs.Name
	item.Category = attrs.Category
	item.Length = attrs.Length
	item.Width = attrs.Width
	item.Height = attrs.Height
	item.Quantity = attrs.Quantity
	item.Weight = attrs.Weight
	item.Volume = volume
	item.IsCustom = attrs.IsCustom
	return item, nil
}

func (fs *furnitureService) DeleteFurniture(ctx context.Context, userID, furnitureID uuid.UUID) error {
	item, err := fs.furnitureRepo.GetOwned(ctx, nil, furnitureID, userID)
	if err != nil {
		fs.log.Error("DeleteFurniture ownership check failed", "error", err, "furniture_id", furnitureID)
		return fmt.Errorf("check furniture ownership: %w", err)
	}
	if item == nil {
		return ErrNotFound
	}
	if _, err := fs.furnitureRepo.Delete(ctx, nil, furnitureID); err != nil {
		fs.log.Error("DeleteFurniture failed", "error", err, "furniture_id", furnitureID)
		return fmt.Errorf("delete furniture: %w", err)
	}
	if err := fs.roomRepo.RecalcVolume(ctx, nil, item.RoomID); err != nil {
		fs.log.Error("DeleteFurniture volume recalc failed", "error", err, "room_id", item.RoomID)
		return fmt.Errorf("recalculate room volume: %w", err)
	}
	return nil
}
