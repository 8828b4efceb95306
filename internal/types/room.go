package types

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MoveID    uuid.UUID `gorm:"type:uuid;not null;index;column:move_id" json:"move_id"`
	Move      *Move     `gorm:"constraint:OnDelete:CASCADE;foreignKey:MoveID;references:ID" json:"move,omitempty"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	RoomType  string    `gorm:"not null;column:room_type" json:"room_type"`
	Volume    float64   `gorm:"not null;default:0;column:volume" json:"volume"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Room) TableName() string { return "rooms" }
