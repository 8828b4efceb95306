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

type RoomService interface {
	ListRoomTypes(ctx context.Context) ([]*types.RoomType, error)
	ListRooms(ctx context.Context, userID, moveID uuid.UUID) ([]*types.Room, error)
	CreateRoom(ctx context.Context, userID, moveID uuid.UUID, name, roomType string) (*types.Room, error)
	UpdateRoom(ctx context.Context, userID, roomID uuid.UUID, name, roomType string) (*types.Room, error)
	// DeleteRoom removes the room's furniture first, then the room itself.
	// The cascade constraint would cover it; the explicit delete keeps the
	// behavior independent of FK configuration.
	DeleteRoom(ctx context.Context, userID, roomID uuid.UUID) error
}

type roomService struct {
	db            *gorm.DB
	log           *logger.Logger
	moveRepo      repos.MoveRepo
	roomRepo      repos.RoomRepo
	furnitureRepo repos.FurnitureRepo
	catalogRepo   repos.CatalogRepo
}

func NewRoomService(
	db *gorm.DB,
	baseLog *logger.Logger,
	moveRepo repos.MoveRepo,
	roomRepo repos.RoomRepo,
	furnitureRepo repos.FurnitureRepo,
	catalogRepo repos.CatalogRepo,
) RoomService {
	serviceLog := baseLog.With("service", "RoomService")
	return &roomService{
		db:            db,
		log:           serviceLog,
		moveRepo:      moveRepo,
		roomRepo:      roomRepo,
		furnitureRepo: furnitureRepo,
		catalogRepo:   catalogRepo,
	}
}

func (rs *roomService) ListRoomTypes(ctx context.Context) ([]*types.RoomType, error) {
	roomTypes, err := rs.catalogRepo.ListRoomTypes(ctx, nil)
	if err != nil {
		rs.log.Error("ListRoomTypes failed", "error", err)
		return nil, fmt.Errorf("list room types: %w", err)
	}
	return roomTypes, nil
}

func (rs *roomService) ListRooms(ctx context.Context, userID, moveID uuid.UUID) ([]*types.Room, error) {
	move, err := rs.moveRepo.GetOwned(ctx, nil, moveID, userID)
	if err != nil {
		rs.log.Error("ListRooms ownership check failed", "error", err, "move_id", moveID)
		return nil, fmt.Errorf("check move ownership: %w", err)
	}
	if move == nil {
		return nil, ErrNotFound
	}
	rooms, err := rs.roomRepo.ListByMove(ctx, nil, moveID)
	if err != nil {
		rs.log.Error("ListRooms failed", "error", err, "move_id", moveID)
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (rs *roomService) CreateRoom(ctx context.Context, userID, moveID uuid.UUID, name, roomType string) (*types.Room, error) {
	name = normalization.TrimInputString(name)
	roomType = normalization.TrimInputString(roomType)
	if name == "" {
		return nil, validationf("name is required")
	}
	if roomType == "" {
		return nil, validationf("room_type is required")
	}
	move, err := rs.moveRepo.GetOwned(ctx, nil, moveID, userID)
	if err != nil {
		rs.log.Error("CreateRoom ownership check failed", "error", err, "move_id", moveID)
		return nil, fmt.Errorf("check move ownership: %w", err)
	}
	if move == nil {
		return nil, ErrNotFound
	}
	room := &types.Room{
		ID:       uuid.New(),
		MoveID:   moveID,
		Name:     name,
		RoomType: roomType,
		Volume:   0,
	}
	if _, err := rs.roomRepo.Create(ctx, nil, []*types.Room{room}); err != nil {
		rs.log.Error("CreateRoom failed", "error", err, "move_id", moveID)
		return nil, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

func (rs *roomService) UpdateRoom(ctx context.Context, userID, roomID uuid.UUID, name, roomType string) (*types.Room, error) {
	name = normalization.TrimInputString(name)
	roomType = normalization.TrimInputString(roomType)
	if name == "" {
		return nil, validationf("name is required")
	}
	if roomType == "" {
		return nil, validationf("room_type is required")
	}
	room, err := rs.roomRepo.GetOwned(ctx, nil, roomID, userID)
	if err != nil {
		rs.log.Error("UpdateRoom ownership check failed", "error", err, "room_id", roomID)
		return nil, fmt.Errorf("check room ownership: %w", err)
	}
	if room == nil {
		return nil, ErrNotFound
	}
	fields := map[string]any{
		"name":      name,
		"room_type": roomType,
	}
	if _, err := rs.roomRepo.UpdateFields(ctx, nil, roomID, fields); err != nil {
		rs.log.Error("UpdateRoom failed", "error", err, "room_id", roomID)
		return nil, fmt.Errorf("update room: %w", err)
	}
	room.Name = name
	room.RoomType = roomType
	return room, nil
}

func (rs *roomService) DeleteRoom(ctx context.Context, userID, roomID uuid.UUID) error {
	room, err := rs.roomRepo.GetOwned(ctx, nil, roomID, userID)
	if err != nil {
		rs.log.Error("DeleteRoom ownership check failed", "error", err, "room_id", roomID)
		return fmt.Errorf("check room ownership: %w", err)
	}
	if room == nil {
		return ErrNotFound
	}
	if _, err := rs.furnitureRepo.DeleteByRoom(ctx, nil, roomID); err != nil {
		rs.log.Error("DeleteRoom failed deleting furniture", "error", err, "room_id", roomID)
		return fmt.Errorf("delete room furniture: %w", err)
	}
	if _, err := rs.roomRepo.Delete(ctx, nil, roomID); err != nil {
		rs.log.Error("DeleteRoom failed", "error", err, "room_id", roomID)
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
