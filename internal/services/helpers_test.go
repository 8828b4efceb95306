package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/db"
	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/repos"
	"github.com/umzugo/packapp-backend/internal/types"
)

type testEnv struct {
	db        *gorm.DB
	auth      AuthService
	moves     MoveService
	rooms     RoomService
	furniture FurnitureService
	extras    ExtrasService
}

// newTestEnv spins up an isolated in-memory database with the full schema
// and reference data, and wires the service stack against it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// A unique shared-cache DSN keeps the database alive across pooled
	// connections while isolating parallel tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, gdb.AutoMigrate(
		&types.User{},
		&types.RoomType{},
		&types.FurnitureCategory{},
		&types.Move{},
		&types.Room{},
		&types.Furniture{},
		&types.Service{},
		&types.Material{},
		&types.MoveHistory{},
	))

	log, err := logger.New("development")
	require.NoError(t, err)
	require.NoError(t, db.SeedReferenceData(gdb, log))

	userRepo := repos.NewUserRepo(gdb, log)
	moveRepo := repos.NewMoveRepo(gdb, log)
	roomRepo := repos.NewRoomRepo(gdb, log)
	furnitureRepo := repos.NewFurnitureRepo(gdb, log)
	serviceRepo := repos.NewServiceRepo(gdb, log)
	materialRepo := repos.NewMaterialRepo(gdb, log)
	catalogRepo := repos.NewCatalogRepo(gdb, log)

	return &testEnv{
		db:        gdb,
		auth:      NewAuthService(gdb, log, userRepo, "test-secret", time.Hour),
		moves:     NewMoveService(gdb, log, moveRepo, roomRepo),
		rooms:     NewRoomService(gdb, log, moveRepo, roomRepo, furnitureRepo, catalogRepo),
		furniture: NewFurnitureService(gdb, log, roomRepo, furnitureRepo, catalogRepo),
		extras:    NewExtrasService(gdb, log, moveRepo, serviceRepo, materialRepo),
	}
}

func (te *testEnv) registerUser(t *testing.T, email string) uuid.UUID {
	t.Helper()
	user := &types.User{
		Email:    email,
		Name:     "Test User",
		Password: "secret123",
	}
	require.NoError(t, te.auth.RegisterUser(context.Background(), user))
	return user.ID
}

func (te *testEnv) createMove(t *testing.T, userID uuid.UUID) (*types.Move, []*types.Room) {
	t.Helper()
	move, rooms, err := te.moves.CreateMove(context.Background(), userID, MoveCreate{
		CustomerName:  "Max Mustermann",
		CustomerEmail: "max@example.com",
		FromAddress:   "Hauptstraße 1, Berlin",
		ToAddress:     "Nebenweg 2, Hamburg",
		MoveDate:      "2026-10-01",
		MoveTime:      "08:00",
	})
	require.NoError(t, err)
	return move, rooms
}
