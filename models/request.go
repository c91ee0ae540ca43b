package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RequestTypeTransport         = "TRANSPORT"
	RequestTypeActivity          = "ACTIVITY"
	RequestTypeDiningReservation = "DINING_RESERVATION"
	RequestTypeSpaGym            = "SPA_GYM"
	RequestTypeHousekeeping      = "HOUSEKEEPING"
	RequestTypeGeneral           = "GENERAL"
)

const (
	RequestStatusPending    = "PENDING"
	RequestStatusProcessing = "PROCESSING"
	RequestStatusConfirmed  = "CONFIRMED"
	RequestStatusCompleted  = "COMPLETED"
	RequestStatusCancelled  = "CANCELLED"
)

// GuestRequest is the generic service ticket raised by any guest-facing
// action that "sends a request to the desk". Staff move it through the
// status pipeline; no transition order is enforced.
type GuestRequest struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestName  string `json:"guestName" gorm:"size:255"`
	RoomNumber string `gorm:"column:room_number;size:50;index" json:"roomNumber"`
	Type       string `json:"type" gorm:"size:32;index"`
	Title      string `json:"title" gorm:"size:150"`
	Details    string `json:"details" gorm:"type:text"`
	Status     string `json:"status" gorm:"size:32;index"`
	Notes      string `json:"notes,omitempty" gorm:"type:text"`
}

func ValidRequestType(s string) bool {
	switch s {
	case RequestTypeTransport, RequestTypeActivity, RequestTypeDiningReservation,
		RequestTypeSpaGym, RequestTypeHousekeeping, RequestTypeGeneral:
		return true
	}
	return false
}

func ValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusPending, RequestStatusProcessing, RequestStatusConfirmed,
		RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}
