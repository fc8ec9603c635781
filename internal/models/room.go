package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room statuses
const (
	RoomVacant      = "Vacant"
	RoomOccupied    = "Occupied"
	RoomMaintenance = "Maintenance"
)

// NoTenant is the tenant name stored on a room nobody lives in
const NoTenant = "-"

// Room represents the rooms table
type Room struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(32)"`
	Type       string          `json:"type" gorm:"column:type"`
	Price      decimal.Decimal `json:"price" gorm:"column:price;type:numeric(12,2)"`
	Status     string          `json:"status" gorm:"column:status;not null;default:Vacant"`
	TenantName string          `json:"tenant_name" gorm:"column:tenant_name;not null;default:'-'"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Room
func (Room) TableName() string {
	return "rooms"
}
