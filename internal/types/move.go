package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Move status lifecycle values. Transition legality is not enforced at the
// data layer; UpdateMove only checks enum membership.
const (
	MoveStatusDraft     = "draft"
	MoveStatusConfirmed = "confirmed"
	MoveStatusCompleted = "completed"
	MoveStatusCancelled = "cancelled"
)

type Move struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Reference           string          `gorm:"uniqueIndex;not null;column:reference" json:"reference"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	User                *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	CustomerName        string          `gorm:"not null;column:customer_name" json:"customer_name"`
	CustomerEmail       string          `gorm:"not null;column:customer_email" json:"customer_email"`
	CustomerPhone       string          `gorm:"column:customer_phone" json:"customer_phone"`
	FromAddress         string          `gorm:"not null;column:from_address" json:"from_address"`
	ToAddress           string          `gorm:"not null;column:to_address" json:"to_address"`
	MoveDate            string          `gorm:"not null;column:move_date" json:"move_date"`
	MoveTime            string          `gorm:"column:move_time" json:"move_time"`
	SpecialRequirements string          `gorm:"column:special_requirements" json:"special_requirements"`
	Status              string          `gorm:"not null;default:draft;column:status" json:"status"`
	TotalVolume         float64         `gorm:"not null;default:0;column:total_volume" json:"total_volume"`
	TotalWeight         float64         `gorm:"not null;default:0;column:total_weight" json:"total_weight"`
	EstimatedCost       decimal.Decimal `gorm:"type:numeric;not null;default:0;column:estimated_cost" json:"estimated_cost"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`
}

func (Move) TableName() string { return "moves" }

func ValidMoveStatus(status string) bool {
	switch status {
	case MoveStatusDraft, MoveStatusConfirmed, MoveStatusCompleted, MoveStatusCancelled:
		return true
	}
	return false
}
