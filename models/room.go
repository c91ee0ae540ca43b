package models

import (
	"gorm.io/gorm"
)

// Room statuses follow the housekeeping lifecycle: bookings flip rooms to
// OCCUPIED/DIRTY, housekeeping flips them back.
const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusOccupied    = "OCCUPIED"
	RoomStatusDirty       = "DIRTY"
	RoomStatusMaintenance = "MAINTENANCE"
)

type Room struct {
	gorm.Model

	RoomNumber  string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Name        string `json:"name" gorm:"size:100"`
	Type        string `json:"type" gorm:"size:100"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Floor       int    `json:"floor"`
	Status      string `json:"status" gorm:"size:32"`
}

func ValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusDirty, RoomStatusMaintenance:
		return true
	}
	return false
}
