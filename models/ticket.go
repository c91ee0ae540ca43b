package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TicketStatusOpen       = "OPEN"
	TicketStatusInProgress = "IN_PROGRESS"
	TicketStatusResolved   = "RESOLVED"
)

const (
	TicketPriorityLow      = "LOW"
	TicketPriorityMedium   = "MEDIUM"
	TicketPriorityHigh     = "HIGH"
	TicketPriorityCritical = "CRITICAL"
)

type MaintenanceTicket struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomNumber  string    `gorm:"column:room_number;size:50;index" json:"roomNumber"`
	Issue       string    `json:"issue" gorm:"size:150"`
	Description string    `json:"description" gorm:"type:text"`
	Priority    string    `json:"priority" gorm:"size:16"`
	Status      string    `json:"status" gorm:"size:32;index"`
	AssignedTo  string    `json:"assignedTo,omitempty" gorm:"size:100"`
	ReportedAt  time.Time `json:"reportedAt"`
}

func ValidTicketStatus(s string) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved:
		return true
	}
	return false
}

func ValidTicketPriority(s string) bool {
	switch s {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}
