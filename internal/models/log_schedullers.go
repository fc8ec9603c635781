package models

import (
	"time"
)

// Scheduler run statuses
const (
	SchedulerStart   = "START"
	SchedulerRunning = "RUNNING"
	SchedulerSuccess = "SUCCESS"
	SchedulerFailed  = "FAILED"
)

// LogSchedullers represents the log_schedullers table
type LogSchedullers struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	DocumentID       string    `json:"document_id" gorm:"column:document_id;index"`
	SchedullerCode   string    `json:"scheduller_code" gorm:"column:scheduller_code"`
	Message          string    `json:"message" gorm:"column:message"`
	StatusScheduller string    `json:"status_scheduller" gorm:"column:status_scheduller"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName sets the insert table name for LogSchedullers
func (LogSchedullers) TableName() string {
	return "log_schedullers"
}
