package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is an ancillary booked service on a move (packing help, assembly,
// storage and the like).
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	MoveID      uuid.UUID       `gorm:"type:uuid;not null;index;column:move_id" json:"move_id"`
	Move        *Move           `gorm:"constraint:OnDelete:CASCADE;foreignKey:MoveID;references:ID" json:"move,omitempty"`
	ServiceType string          `gorm:"not null;column:service_type" json:"service_type"`
	Quantity    int             `gorm:"not null;default:1;column:quantity" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:numeric;not null;default:0;column:price" json:"price"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

func (Service) TableName() string { return "services" }
