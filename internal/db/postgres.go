package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/types"
	"github.com/umzugo/packapp-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	log.Info("Loading environment variables...")
	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "packapp", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.RoomType{},
		&types.FurnitureCategory{},
		&types.Move{},
		&types.Room{},
		&types.Furniture{},
		&types.Service{},
		&types.Material{},
		&types.MoveHistory{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		name, table, column, refTable string
	}{
		{"fk_moves_user_id", "moves", "user_id", "users"},
		{"fk_rooms_move_id", "rooms", "move_id", "moves"},
		{"fk_furniture_room_id", "furniture", "room_id", "rooms"},
		{"fk_services_move_id", "services", "move_id", "moves"},
		{"fk_materials_move_id", "materials", "move_id", "moves"},
		{"fk_move_history_move_id", "move_history", "move_id", "moves"},
	}
	for _, fk := range constraints {
		drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, fk.table, fk.name)
		if err := s.db.Exec(drop).Error; err != nil {
			return fmt.Errorf("failed to drop %s: %w", fk.name, err)
		}
		add := fmt.Sprintf(`
			ALTER TABLE %q
			ADD CONSTRAINT %q
			FOREIGN KEY (%q)
			REFERENCES %q("id")
			ON DELETE CASCADE
		`, fk.table, fk.name, fk.column, fk.refTable)
		if err := s.db.Exec(add).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", fk.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
