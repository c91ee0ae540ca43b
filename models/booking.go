package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusConfirmed  = "CONFIRMED"
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
	BookingStatusCancelled  = "CANCELLED"
)

const (
	ChannelDirect     = "DIRECT"
	ChannelAirbnb     = "AIRBNB"
	ChannelBookingCom = "BOOKING_COM"
	ChannelExpedia    = "EXPEDIA"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:32;uniqueIndex" json:"referenceCode"`

	GuestID uint  `gorm:"index;column:guest_id" json:"guestId"`
	Guest   Guest `gorm:"foreignKey:GuestID" json:"guest"`

	// Rooms are referenced by number, not surrogate id; availability and the
	// status cascade key off room_number.
	RoomNumber string `gorm:"column:room_number;size:50;index" json:"roomNumber"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`

	Status           string     `gorm:"size:32;index" json:"status"`
	TotalAmountCents int64      `gorm:"column:total_amount_cents" json:"totalAmountCents"`
	Channel          string     `gorm:"size:32" json:"channel"`
	IsContractSigned bool       `json:"isContractSigned"`
	IsIdVerified     bool       `json:"isIdVerified"`
	IsDepositPaid    bool       `json:"isDepositPaid"`
	ETA              string     `gorm:"column:eta;size:32" json:"eta,omitempty"`
	DoorCode         string     `gorm:"size:16" json:"doorCode,omitempty"`
	CheckedInAt      *time.Time `json:"checkedInAt,omitempty"`
}

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}
