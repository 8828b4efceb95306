package db

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/umzugo/packapp-backend/internal/logger"
	"github.com/umzugo/packapp-backend/internal/types"
)

// Default reference catalogs, inserted once at startup. Room and furniture
// type fields stay free text; these only pre-populate client choices.
var defaultRoomTypes = []types.RoomType{
	{Name: "Wohnzimmer", Icon: "🛋️"},
	{Name: "Schlafzimmer", Icon: "🛏️"},
	{Name: "Küche", Icon: "🍳"},
	{Name: "Bad", Icon: "🚿"},
	{Name: "Keller", Icon: "🏠"},
	{Name: "Dachboden", Icon: "🏠"},
	{Name: "Flur", Icon: "🚪"},
	{Name: "Arbeitszimmer", Icon: "💻"},
	{Name: "Kinderzimmer", Icon: "🧸"},
	{Name: "Gästezimmer", Icon: "🛏️"},
	{Name: "Abstellraum", Icon: "📦"},
	{Name: "Garten", Icon: "🌳"},
}

var defaultFurnitureCategories = []types.FurnitureCategory{
	{Name: "Sofa", RoomType: "Wohnzimmer", DefaultLength: 200, DefaultWidth: 80, DefaultHeight: 85, DefaultWeight: 80},
	{Name: "Fernseher", RoomType: "Wohnzimmer", DefaultLength: 120, DefaultWidth: 70, DefaultHeight: 5, DefaultWeight: 25},
	{Name: "Tisch", RoomType: "Wohnzimmer", DefaultLength: 140, DefaultWidth: 80, DefaultHeight: 75, DefaultWeight: 30},
	{Name: "Stühle", RoomType: "Wohnzimmer", DefaultLength: 45, DefaultWidth: 45, DefaultHeight: 90, DefaultWeight: 8},
	{Name: "Bett", RoomType: "Schlafzimmer", DefaultLength: 160, DefaultWidth: 200, DefaultHeight: 40, DefaultWeight: 60},
	{Name: "Kleiderschrank", RoomType: "Schlafzimmer", DefaultLength: 200, DefaultWidth: 60, DefaultHeight: 220, DefaultWeight: 100},
	{Name: "Nachttisch", RoomType: "Schlafzimmer", DefaultLength: 50, DefaultWidth: 40, DefaultHeight: 60, DefaultWeight: 15},
	{Name: "Kühlschrank", RoomType: "Küche", DefaultLength: 60, DefaultWidth: 60, DefaultHeight: 180, DefaultWeight: 80},
	{Name: "Herd", RoomType: "Küche", DefaultLength: 60, DefaultWidth: 60, DefaultHeight: 85, DefaultWeight: 50},
	{Name: "Spülmaschine", RoomType: "Küche", DefaultLength: 60, DefaultWidth: 60, DefaultHeight: 85, DefaultWeight: 45},
	{Name: "Waschbecken", RoomType: "Küche", DefaultLength: 60, DefaultWidth: 60, DefaultHeight: 85, DefaultWeight: 20},
	{Name: "Toilette", RoomType: "Bad", DefaultLength: 70, DefaultWidth: 60, DefaultHeight: 85, DefaultWeight: 25},
	{Name: "Dusche", RoomType: "Bad", DefaultLength: 80, DefaultWidth: 80, DefaultHeight: 200, DefaultWeight: 30},
	{Name: "Waschbecken", RoomType: "Bad", DefaultLength: 60, DefaultWidth: 50, DefaultHeight: 85, DefaultWeight: 15},
}

// SeedReferenceData populates the static catalogs if they are empty.
// Safe to call on every startup.
func SeedReferenceData(gdb *gorm.DB, log *logger.Logger) error {
	seedLog := log.With("component", "SeedReferenceData")

	var roomTypeCount int64
	if err := gdb.Model(&types.RoomType{}).Count(&roomTypeCount).Error; err != nil {
		return fmt.Errorf("count room types: %w", err)
	}
	if roomTypeCount == 0 {
		rows := make([]types.RoomType, len(defaultRoomTypes))
		copy(rows, defaultRoomTypes)
		for i := range rows {
			rows[i].ID = uuid.New()
		}
		if err := gdb.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed room types: %w", err)
		}
		seedLog.Info("Seeded room types", "count", len(rows))
	}

	var categoryCount int64
	if err := gdb.Model(&types.FurnitureCategory{}).Count(&categoryCount).Error; err != nil {
		return fmt.Errorf("count furniture categories: %w", err)
	}
	if categoryCount == 0 {
		rows := make([]types.FurnitureCategory, len(defaultFurnitureCategories))
		copy(rows, defaultFurnitureCategories)
		for i := range rows {
			rows[i].ID = uuid.New()
		}
		if err := gdb.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed furniture categories: %w", err)
		}
		seedLog.Info("Seeded furniture categories", "count", len(rows))
	}

	return nil
}
