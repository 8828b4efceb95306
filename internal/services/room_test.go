package services

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndUpdateRoom(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	move, _ := te.createMove(t, userID)

	room, err := te.rooms.CreateRoom(context.Background(), userID, move.ID, " Hobbyraum ", "Keller")
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if room.Name != "Hobbyraum" {
		t.Fatalf("name not trimmed: %q", room.Name)
	}
	if room.Volume != 0 {
		t.Fatalf("new room should have zero volume, got %v", room.Volume)
	}

	updated, err := te.rooms.UpdateRoom(context.Background(), userID, room.ID, "Werkstatt", "Keller")
	if err != nil {
		t.Fatalf("UpdateRoom: %v", err)
	}
	if updated.Name != "Werkstatt" {
		t.Fatalf("name not updated: %q", updated.Name)
	}

	var verr *ValidationError
	if _, err := te.rooms.CreateRoom(context.Background(), userID, move.ID, "", "Keller"); !errors.As(err, &verr) {
		t.Fatalf("missing name should be a validation error, got %v", err)
	}
	if _, err := te.rooms.CreateRoom(context.Background(), userID, move.ID, "Raum", ""); !errors.As(err, &verr) {
		t.Fatalf("missing room type should be a validation error, got %v", err)
	}
}

func TestDeleteRoomRemovesFurniture(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	_, rooms := te.createMove(t, userID)
	roomID := rooms[0].ID

	if _, err := te.furniture.CreateFurniture(context.Background(), userID, roomID, FurnitureAttrs{
		Name: "Sofa", Category: "Sofa", Length: 200, Width: 80, Height: 85, Quantity: 1,
	}); err != nil {
		t.Fatalf("CreateFurniture: %v", err)
	}

	if err := te.rooms.DeleteRoom(context.Background(), userID, roomID); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if _, err := te.furniture.ListFurniture(context.Background(), userID, roomID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("furniture listing for deleted room should be ErrNotFound, got %v", err)
	}
	if err := te.rooms.DeleteRoom(context.Background(), userID, roomID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestRoomOwnership(t *testing.T) {
	te := newTestEnv(t)
	owner := te.registerUser(t, "owner@example.com")
	other := te.registerUser(t, "other@example.com")
	move, rooms := te.createMove(t, owner)

	if _, err := te.rooms.ListRooms(context.Background(), other, move.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign list should be ErrNotFound, got %v", err)
	}
	if _, err := te.rooms.CreateRoom(context.Background(), other, move.ID, "Raum", "Keller"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign create should be ErrNotFound, got %v", err)
	}
	if _, err := te.rooms.UpdateRoom(context.Background(), other, rooms[0].ID, "Raum", "Keller"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign update should be ErrNotFound, got %v", err)
	}
	if err := te.rooms.DeleteRoom(context.Background(), other, rooms[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete should be ErrNotFound, got %v", err)
	}
}

func TestListRoomTypesSeeded(t *testing.T) {
	te := newTestEnv(t)
	roomTypes, err := te.rooms.ListRoomTypes(context.Background())
	if err != nil {
		t.Fatalf("ListRoomTypes: %v", err)
	}
	if len(roomTypes) != 12 {
		t.Fatalf("expected 12 seeded room types, got %d", len(roomTypes))
	}
}
