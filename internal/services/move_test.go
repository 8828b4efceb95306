package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"

	"github.com/umzugo/packapp-backend/internal/types"
)

var referencePattern = regexp.MustCompile(`^UMZ-[A-Z0-9]{8}$`)

func TestCreateMoveSeedsStandardRooms(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")

	move, rooms, err := te.moves.CreateMove(context.Background(), userID, MoveCreate{
		CustomerName:  "Max Mustermann",
		CustomerEmail: "Max@Example.com ",
		FromAddress:   "Hauptstraße 1, Berlin",
		ToAddress:     "Nebenweg 2, Hamburg",
		MoveDate:      "2026-10-01",
	})
	if err != nil {
		t.Fatalf("CreateMove: %v", err)
	}
	if !referencePattern.MatchString(move.Reference) {
		t.Fatalf("unexpected reference format: %q", move.Reference)
	}
	if move.Status != types.MoveStatusDraft {
		t.Fatalf("expected draft status, got %q", move.Status)
	}
	if move.CustomerEmail != "max@example.com" {
		t.Fatalf("email not normalized: %q", move.CustomerEmail)
	}
	if len(rooms) != 5 {
		t.Fatalf("expected 5 standard rooms, got %d", len(rooms))
	}
	seen := map[string]bool{}
	for _, r := range rooms {
		seen[r.Name] = true
		if r.Volume != 0 {
			t.Fatalf("new room %q should have zero volume, got %v", r.Name, r.Volume)
		}
	}
	for _, name := range []string{"Wohnzimmer", "Schlafzimmer", "Küche", "Bad", "Flur"} {
		if !seen[name] {
			t.Fatalf("missing standard room %q", name)
		}
	}
}

func TestCreateMoveReferencesAreUnique(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")

	refs := map[string]bool{}
	for i := 0; i < 10; i++ {
		move, _ := te.createMove(t, userID)
		if refs[move.Reference] {
			t.Fatalf("duplicate reference %q", move.Reference)
		}
		refs[move.Reference] = true
	}
}

func TestCreateMoveValidation(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")

	cases := []struct {
		name string
		in   MoveCreate
	}{
		{"missing name", MoveCreate{CustomerEmail: "a@b.de", FromAddress: "x", ToAddress: "y", MoveDate: "2026-10-01"}},
		{"bad email", MoveCreate{CustomerName: "A", CustomerEmail: "not-an-email", FromAddress: "x", ToAddress: "y", MoveDate: "2026-10-01"}},
		{"missing from", MoveCreate{CustomerName: "A", CustomerEmail: "a@b.de", ToAddress: "y", MoveDate: "2026-10-01"}},
		{"bad date", MoveCreate{CustomerName: "A", CustomerEmail: "a@b.de", FromAddress: "x", ToAddress: "y", MoveDate: "01.10.2026"}},
	}
	for _, tc := range cases {
		_, _, err := te.moves.CreateMove(context.Background(), userID, tc.in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestGetMoveHidesForeignMoves(t *testing.T) {
	te := newTestEnv(t)
	owner := te.registerUser(t, "owner@example.com")
	other := te.registerUser(t, "other@example.com")
	move, _ := te.createMove(t, owner)

	if _, err := te.moves.GetMove(context.Background(), owner, move.ID); err != nil {
		t.Fatalf("owner should see own move: %v", err)
	}
	if _, err := te.moves.GetMove(context.Background(), other, move.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign move, got %v", err)
	}
	if _, err := te.moves.GetMove(context.Background(), owner, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing move, got %v", err)
	}
}

func TestUpdateMovePartialFields(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	move, _ := te.createMove(t, userID)

	status := "confirmed"
	phone := " 030 123456 "
	err := te.moves.UpdateMove(context.Background(), userID, move.ID, MoveUpdate{
		Status:        &status,
		CustomerPhone: &phone,
	})
	if err != nil {
		t.Fatalf("UpdateMove: %v", err)
	}

	got, err := te.moves.GetMove(context.Background(), userID, move.ID)
	if err != nil {
		t.Fatalf("GetMove: %v", err)
	}
	if got.Status != types.MoveStatusConfirmed {
		t.Fatalf("status not updated: %q", got.Status)
	}
	if got.CustomerPhone != "030 123456" {
		t.Fatalf("phone not trimmed: %q", got.CustomerPhone)
	}
	if got.CustomerName != move.CustomerName {
		t.Fatalf("untouched field changed: %q", got.CustomerName)
	}
}

func TestUpdateMoveRejectsBadInput(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	move, _ := te.createMove(t, userID)

	var verr *ValidationError

	before, err := te.moves.GetMove(context.Background(), userID, move.ID)
	if err != nil {
		t.Fatalf("GetMove: %v", err)
	}
	if err := te.moves.UpdateMove(context.Background(), userID, move.ID, MoveUpdate{}); !errors.As(err, &verr) {
		t.Fatalf("empty update should be a validation error, got %v", err)
	}
	after, err := te.moves.GetMove(context.Background(), userID, move.ID)
	if err != nil {
		t.Fatalf("GetMove: %v", err)
	}
	if !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("rejected update must not touch updated_at: %v -> %v", before.UpdatedAt, after.UpdatedAt)
	}

	bad := "shipped"
	if err := te.moves.UpdateMove(context.Background(), userID, move.ID, MoveUpdate{Status: &bad}); !errors.As(err, &verr) {
		t.Fatalf("invalid status should be a validation error, got %v", err)
	}

	badDate := "tomorrow"
	if err := te.moves.UpdateMove(context.Background(), userID, move.ID, MoveUpdate{MoveDate: &badDate}); !errors.As(err, &verr) {
		t.Fatalf("invalid date should be a validation error, got %v", err)
	}

	name := "Neu"
	other := te.registerUser(t, "other@example.com")
	if err := te.moves.UpdateMove(context.Background(), other, move.ID, MoveUpdate{CustomerName: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign update should be ErrNotFound, got %v", err)
	}
}

func TestDeleteMoveCascades(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	move, rooms := te.createMove(t, userID)

	_, err := te.furniture.CreateFurniture(context.Background(), userID, rooms[0].ID, FurnitureAttrs{
		Name: "Sofa", Category: "Sofa", Length: 200, Width: 80, Height: 85, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("CreateFurniture: %v", err)
	}

	if err := te.moves.DeleteMove(context.Background(), userID, move.ID); err != nil {
		t.Fatalf("DeleteMove: %v", err)
	}
	if err := te.moves.DeleteMove(context.Background(), userID, move.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}

	var roomCount, furnitureCount int64
	if err := te.db.Model(&types.Room{}).Where("move_id = ?", move.ID).Count(&roomCount).Error; err != nil {
		t.Fatalf("count rooms: %v", err)
	}
	if err := te.db.Model(&types.Furniture{}).Count(&furnitureCount).Error; err != nil {
		t.Fatalf("count furniture: %v", err)
	}
	if roomCount != 0 || furnitureCount != 0 {
		t.Fatalf("children not cascaded: %d rooms, %d furniture", roomCount, furnitureCount)
	}
}

func TestAddStandardRoomsDuplicates(t *testing.T) {
	te := newTestEnv(t)
	userID := te.registerUser(t, "mover@example.com")
	move, _ := te.createMove(t, userID)

	if _, err := te.moves.AddStandardRooms(context.Background(), userID, move.ID); err != nil {
		t.Fatalf("AddStandardRooms: %v", err)
	}
	rooms, err := te.rooms.ListRooms(context.Background(), userID, move.ID)
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != 10 {
		t.Fatalf("expected 10 rooms after re-seeding, got %d", len(rooms))
	}

	other := te.registerUser(t, "other@example.com")
	if _, err := te.moves.AddStandardRooms(context.Background(), other, move.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign seeding should be ErrNotFound, got %v", err)
	}
}

func TestListMovesScopedToUser(t *testing.T) {
	te := newTestEnv(t)
	alice := te.registerUser(t, "alice@example.com")
	bob := te.registerUser(t, "bob@example.com")
	te.createMove(t, alice)
	te.createMove(t, alice)
	te.createMove(t, bob)

	aliceMoves, err := te.moves.ListMoves(context.Background(), alice)
	if err != nil {
		t.Fatalf("ListMoves: %v", err)
	}
	if len(aliceMoves) != 2 {
		t.Fatalf("expected 2 moves for alice, got %d", len(aliceMoves))
	}
	bobMoves, err := te.moves.ListMoves(context.Background(), bob)
	if err != nil {
		t.Fatalf("ListMoves: %v", err)
	}
	if len(bobMoves) != 1 {
		t.Fatalf("expected 1 move for bob, got %d", len(bobMoves))
	}
}
