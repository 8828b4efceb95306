package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material is a packing-material line item on a move. TotalPrice is computed
// once at insert time (quantity x price per unit) and never re-derived.
type Material struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	MoveID       uuid.UUID       `gorm:"type:uuid;not null;index;column:move_id" json:"move_id"`
	Move         *Move           `gorm:"constraint:OnDelete:CASCADE;foreignKey:MoveID;references:ID" json:"move,omitempty"`
	MaterialType string          `gorm:"not null;column:material_type" json:"material_type"`
	Quantity     int             `gorm:"not null;default:0;column:quantity" json:"quantity"`
	PricePerUnit decimal.Decimal `gorm:"type:numeric;not null;default:0;column:price_per_unit" json:"price_per_unit"`
	TotalPrice   decimal.Decimal `gorm:"type:numeric;not null;default:0;column:total_price" json:"total_price"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
}

func (Material) TableName() string { return "materials" }
