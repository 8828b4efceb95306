package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/umzugo/packapp-backend/internal/types"
)

const volumeTolerance = 1e-9

func (te *testEnv) roomVolume(t *testing.T, roomID uuid.UUID) float64 {
	t.Helper()
	var room types.Room
	if err := te.db.Where("id = ?", roomID).First(&room).Error; err != nil {
		t.Fatalf("load room: %v", err)
	}
	return room.Volume
}

func TestCreateFurnitureComputesVolume(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	_, rooms := te.createMove(t, userID)
	roomID := rooms[0].ID

	item, err := te.furniture.CreateFurniture(context.Background(), userID, roomID, FurnitureAttrs{
		Name: "Sofa", Category: "Sofa", Length: 200, Width: 80, Height: 85, Quantity: 1, Weight: 80,
	})
	if err != nil {
		t.Fatalf("CreateFurniture: %v", err)
	}
	// 200 * 80 * 85 / 1,000,000 = 1.36 m³
	if math.Abs(item.Volume-1.36) > volumeTolerance {
		t.Fatalf("expected volume 1.36, got %v", item.Volume)
	}
	if got := te.roomVolume(t, roomID); math.Abs(got-1.36) > volumeTolerance {
		t.Fatalf("room volume not recalculated, got %v", got)
	}
}

func TestFurnitureQuantityMultipliesVolume(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	_, rooms := te.createMove(t, userID)
	roomID := rooms[0].ID

	item, err := te.furniture.CreateFurniture(context.Background(), userID, roomID, FurnitureAttrs{
		Name: "Stühle", Category: "Stühle", Length: 45, Width: 45, Height: 90, Quantity: 4, Weight: 8,
	})
	if err != nil {
		t.Fatalf("CreateFurniture: %v", err)
	}
	want := 45.0 * 45 * 90 * 4 / 1_000_000
	if math.Abs(item.Volume-want) > volumeTolerance {
		t.Fatalf("expected volume %v, got %v", want, item.Volume)
	}
}

func TestUpdateFurnitureRecalculatesRoomVolume(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	_, rooms := te.createMove(t, userID)
	roomID := rooms[0].ID

	item, err := te.furniture.CreateFurniture(context.Background(), userID, roomID, FurnitureAttrs{
		Name: "Sofa", Category: "Sofa", Length: 200, Width: 80, Height: 85, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("CreateFurniture: %v", err)
	}

	updated, err := te.furniture.UpdateFurniture(context.Background(), userID, item.ID, FurnitureAttrs{
		Name: "Großes Sofa", Category: "Sofa", Length: 250, Width: 100, Height: 90, Quantity: 2, Weight: 120,
	})
	if err != nil {
		t.Fatalf("UpdateFurniture: %v", err)
	}
	want := 250.0 * 100 * 90 * 2 / 1_000_000
	if math.Abs(updated.Volume-want) > volumeTolerance {
		t.Fatalf("expected volume %v, got %v", want, updated.Volume)
	}
	if got := te.roomVolume(t, roomID); math.Abs(got-want) > volumeTolerance {
		t.Fatalf("room volume not recalculated, got %v", got)
	}
}

func TestDeleteFurnitureResetsRoomVolume(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	_, rooms := te.createMove(t, userID)
	roomID := rooms[0].ID

	item, err := te.furniture.CreateFurniture(context.Background(), userID, roomID, FurnitureAttrs{
		Name: "Bett", Category: "Bett", Length: 160, Width: 200, Height: 40, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("CreateFurniture: %v", err)
	}
	if err := te.furniture.DeleteFurniture(context.Background(), userID, item.ID); err != nil {
		t.Fatalf("DeleteFurniture: %v", err)
	}
	if got := te.roomVolume(t, roomID); got != 0 {
		t.Fatalf("room volume should be 0 after last item removed, got %v", got)
	}
	if err := te.furniture.DeleteFurniture(context.Background(), userID, item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestFurnitureValidation(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	_, rooms := te.createMove(t, userID)
	roomID := rooms[0].ID

	cases := []struct {
		name  string
		attrs FurnitureAttrs
	}{
		{"missing name", FurnitureAttrs{Category: "Sofa", Length: 1, Width: 1, Height: 1, Quantity: 1}},
		{"missing category", FurnitureAttrs{Name: "Sofa", Length: 1, Width: 1, Height: 1, Quantity: 1}},
		{"zero length", FurnitureAttrs{Name: "Sofa", Category: "Sofa", Width: 1, Height: 1, Quantity: 1}},
		{"zero quantity", FurnitureAttrs{Name: "Sofa", Category: "Sofa", Length: 1, Width: 1, Height: 1}},
		{"negative weight", FurnitureAttrs{Name: "Sofa", Category: "Sofa", Length: 1, Width: 1, Height: 1, Quantity: 1, Weight: -5}},
	}
	for _, tc := range cases {
		_, err := te.furniture.CreateFurniture(context.Background(), userID, roomID, tc.attrs)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestFurnitureOwnership(t *testing.T) {
	te := newTestEnv(t)
	owner := te.registerUser(t, "owner@example.com")
	other := te.registerUser(t, "other@example.com")
	_, rooms := te.createMove(t, owner)
	roomID := rooms[0].ID

	item, err := te.furniture.CreateFurniture(context.Background(), owner, roomID, FurnitureAttrs{
		Name: "Sofa", Category: "Sofa", Length: 200, Width: 80, Height: 85, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("CreateFurniture: %v", err)
	}

	if _, err := te.furniture.ListFurniture(context.Background(), other, roomID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign list should be ErrNotFound, got %v", err)
	}
	if _, err := te.furniture.CreateFurniture(context.Background(), other, roomID, FurnitureAttrs{
		Name: "Tisch", Category: "Tisch", Length: 1, Width: 1, Height: 1, Quantity: 1,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign create should be ErrNotFound, got %v", err)
	}
	if err := te.furniture.DeleteFurniture(context.Background(), other, item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete should be ErrNotFound, got %v", err)
	}
}

func TestListCategoriesSeeded(t *testing.T) {
	te := newTestEnv(t)
	categories, err := te.furniture.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != 14 {
		t.Fatalf("expected 14 seeded categories, got %d", len(categories))
	}
}
