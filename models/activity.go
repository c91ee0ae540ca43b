package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Activity struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string         `json:"title" gorm:"size:150"`
	Subtitle    string         `json:"subtitle" gorm:"size:150"`
	Category    string         `json:"category" gorm:"size:64"`
	Description string         `json:"description" gorm:"type:text"`
	Duration    string         `json:"duration" gorm:"size:32"`
	Rating      float64        `json:"rating"`
	PriceCents  int64          `gorm:"column:price_cents" json:"priceCents"`
	Image       string         `json:"image" gorm:"size:512"`
	Highlights  datatypes.JSON `json:"highlights,omitempty"`
}
