package models

import (
	"time"

	"github.com/lib/pq"
)

// Notification types
const (
	NotificationPayment         = "payment"
	NotificationPaymentVerified = "payment_verified"
	NotificationMaintenance     = "maintenance"
	NotificationParcel          = "parcel"
	NotificationPaymentReminder = "payment_reminder"
)

// Notification represents the notifications table. A nil RoomID addresses all admins.
// Read is the legacy single-reader flag; ReadBy only ever grows.
type Notification struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Type      string         `json:"type" gorm:"column:type;not null;index"`
	Title     string         `json:"title" gorm:"column:title"`
	Message   string         `json:"message" gorm:"column:message"`
	RoomID    *string        `json:"room_id,omitempty" gorm:"column:room_id;index"`
	ReadBy    pq.StringArray `json:"read_by" gorm:"column:read_by;type:text[]"`
	Read      *bool          `json:"read,omitempty" gorm:"column:read"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
}

// TableName sets the insert table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
