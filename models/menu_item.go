package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MenuItem prices are stored as integer cents; display strings like "$28"
// are parsed at the API boundary and formatted back on the way out.
type MenuItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Category    string `json:"category" gorm:"size:64;index"`
	Title       string `json:"title" gorm:"size:150"`
	Description string `json:"description" gorm:"type:text"`
	PriceCents  int64  `gorm:"column:price_cents" json:"priceCents"`
	Image       string `json:"image" gorm:"size:512"`

	IsVegetarian bool `json:"isVegetarian"`
	// Available=false hides the item from the guest menu without deleting it.
	Available bool `json:"available" gorm:"default:true"`

	Ingredients datatypes.JSON `json:"ingredients,omitempty"`

	PairingID            *uint          `gorm:"column:pairing_id" json:"pairingId,omitempty"`
	PairingReason        string         `json:"pairingReason,omitempty" gorm:"size:255"`
	CustomizationOptions datatypes.JSON `gorm:"column:customization_options" json:"customizationOptions,omitempty"`
}

// MenuItemOption is the shape stored inside CustomizationOptions.
type MenuItemOption struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents,omitempty"`
}
