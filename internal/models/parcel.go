package models

import (
	"time"
)

// Parcel statuses
const (
	ParcelArrived  = "Arrived"
	ParcelPickedUp = "PickedUp"
)

// Parcel represents the parcels table
type Parcel struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(64)"`
	RoomID     string     `json:"room_id" gorm:"column:room_id;not null;index"`
	Carrier    string     `json:"carrier" gorm:"column:carrier"`
	Note       string     `json:"note" gorm:"column:note"`
	ImageRef   *string    `json:"image_ref,omitempty" gorm:"column:image_ref"`
	Status     string     `json:"status" gorm:"column:status;not null"`
	ArrivedAt  time.Time  `json:"arrived_at" gorm:"column:arrived_at"`
	PickedUpAt *time.Time `json:"picked_up_at,omitempty" gorm:"column:picked_up_at"`
}

// TableName sets the insert table name for Parcel
func (Parcel) TableName() string {
	return "parcels"
}
