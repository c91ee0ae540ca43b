package models

import "time"

// HotelSetting is a singleton row edited from the admin settings form.
type HotelSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Currency  string    `gorm:"size:8" json:"currency"`
	TaxRate   float64   `json:"taxRate"`
	Email     string    `gorm:"size:150" json:"email"`
	Address   string    `gorm:"type:text" json:"address,omitempty"`
	Phone     string    `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
