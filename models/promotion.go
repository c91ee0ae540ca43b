package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PromotionTypeEvent        = "EVENT"
	PromotionTypeOffer        = "OFFER"
	PromotionTypeAnnouncement = "ANNOUNCEMENT"
)

type Promotion struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title    string `json:"title" gorm:"size:150"`
	Subtitle string `json:"subtitle" gorm:"size:150"`
	Image    string `json:"image" gorm:"size:512"`
	Type     string `json:"type" gorm:"size:32"`
	// Active is toggled independently of deletion; inactive promotions stay
	// out of the guest feed.
	Active bool `json:"active"`
}

func ValidPromotionType(s string) bool {
	switch s {
	case PromotionTypeEvent, PromotionTypeOffer, PromotionTypeAnnouncement:
		return true
	}
	return false
}
