package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Charge categories
const (
	CategoryRent        = "rent"
	CategoryWater       = "water"
	CategoryElectricity = "electricity"
	CategoryMaintenance = "maintenance"
	CategoryOther       = "other"
)

// Charge represents the charges table. Room and RoomNumber are both kept
// because older records were written with either key.
type Charge struct {
	ID         string            `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Room       *string           `json:"room,omitempty" gorm:"column:room;index"`
	RoomNumber *string           `json:"room_number,omitempty" gorm:"column:room_number;index"`
	Category   string            `json:"category" gorm:"column:category;not null"`
	Amount     decimal.Decimal   `json:"amount" gorm:"column:amount;type:numeric(12,2);not null"`
	// DueDate is written as YYYY-MM-DD. Imported records may carry a full RFC 3339 timestamp.
	DueDate    string            `json:"due_date" gorm:"column:due_date;type:varchar(40);index"`
	Status     string            `json:"status" gorm:"column:status;not null"`
	ProofRef   *string           `json:"proof_ref,omitempty" gorm:"column:proof_ref"`
	PaidAt     *time.Time        `json:"paid_at,omitempty" gorm:"column:paid_at"`
	Details    datatypes.JSONMap `json:"details,omitempty" gorm:"column:details;type:jsonb"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// TableName sets the insert table name for Charge
func (Charge) TableName() string {
	return "charges"
}
