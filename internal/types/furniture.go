package types

import (
	"time"

	"github.com/google/uuid"
)

type Furniture struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoomID    uuid.UUID `gorm:"type:uuid;not null;index;column:room_id" json:"room_id"`
	Room      *Room     `gorm:"constraint:OnDelete:CASCADE;foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Category  string    `gorm:"not null;column:category" json:"category"`
	Length    float64   `gorm:"not null;column:length" json:"length"`
	Width     float64   `gorm:"not null;column:width" json:"width"`
	Height    float64   `gorm:"not null;column:height" json:"height"`
	Quantity  int       `gorm:"not null;default:1;column:quantity" json:"quantity"`
	Weight    float64   `gorm:"not null;default:0;column:weight" json:"weight"`
	Volume    float64   `gorm:"not null;default:0;column:volume" json:"volume"`
	IsCustom  bool      `gorm:"not null;default:false;column:is_custom" json:"is_custom"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Furniture) TableName() string { return "furniture" }

// FurnitureVolume converts centimeter dimensions to cubic meters.
func FurnitureVolume(length, width, height float64, quantity int) float64 {
	return length * width * height * float64(quantity) / 1_000_000
}
