package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MoveHistory is an append-only audit row. The schema is migrated but no
// handler writes it yet; it is reserved for a future audit trail.
type MoveHistory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	MoveID    uuid.UUID      `gorm:"type:uuid;not null;index;column:move_id" json:"move_id"`
	Move      *Move          `gorm:"constraint:OnDelete:CASCADE;foreignKey:MoveID;references:ID" json:"move,omitempty"`
	Action    string         `gorm:"not null;column:action" json:"action"`
	Changes   datatypes.JSON `gorm:"column:changes;type:jsonb" json:"changes"`
	UserID    *uuid.UUID     `gorm:"type:uuid;column:user_id" json:"user_id,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (MoveHistory) TableName() string { return "move_history" }
