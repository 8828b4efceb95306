package types

import (
	"github.com/google/uuid"
)

// RoomType and FurnitureCategory are static reference catalogs used to
// pre-populate choices in the client. Room.RoomType and Furniture.Category
// are free text and not foreign-key-enforced against them.

type RoomType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Icon string    `gorm:"not null;column:icon" json:"icon"`
}

func (RoomType) TableName() string { return "room_types" }

type FurnitureCategory struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"not null;column:name" json:"name"`
	RoomType      string    `gorm:"not null;column:room_type" json:"room_type"`
	DefaultLength float64   `gorm:"not null;column:default_length" json:"default_length"`
	DefaultWidth  float64   `gorm:"not null;column:default_width" json:"default_width"`
	DefaultHeight float64   `gorm:"not null;column:default_height" json:"default_height"`
	DefaultWeight float64   `gorm:"not null;column:default_weight" json:"default_weight"`
}

func (FurnitureCategory) TableName() string { return "furniture_categories" }
