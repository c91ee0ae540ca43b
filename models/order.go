package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusDelivered = "DELIVERED"
)

type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RoomNumber string      `gorm:"column:room_number;size:50;index" json:"roomNumber"`
	GuestName  string      `json:"guestName" gorm:"size:255"`
	Status     string      `json:"status" gorm:"size:32;index"`
	PlacedAt   time.Time   `json:"placedAt"`
	TotalCents int64       `gorm:"column:total_cents" json:"totalCents"`
	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem snapshots the line at order time so later menu edits do not
// rewrite history.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index;column:order_id" json:"-"`

	MenuItemID *uint  `gorm:"column:menu_item_id" json:"menuItemId,omitempty"`
	Title      string `json:"title" gorm:"size:150"`
	Category   string `json:"category" gorm:"size:64"`
	PriceCents int64  `gorm:"column:price_cents" json:"priceCents"`

	Notes           string         `json:"notes,omitempty" gorm:"size:255"`
	SelectedOptions datatypes.JSON `gorm:"column:selected_options" json:"selectedOptions,omitempty"`
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered:
		return true
	}
	return false
}
