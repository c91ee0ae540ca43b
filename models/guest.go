package models

import "time"

// Guest is the profile captured when a booking is created. It is owned by
// its booking and has no independent update path.
type Guest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName       string `json:"fullName" gorm:"size:255"`
	Email          string `json:"email" gorm:"size:150"`
	PassportNumber string `json:"passportNumber" gorm:"size:64"`
	Nationality    string `json:"nationality" gorm:"size:64"`
	Phone          string `json:"phone" gorm:"size:50"`
	Address        string `json:"address,omitempty" gorm:"size:255"`
	City           string `json:"city,omitempty" gorm:"size:100"`
	Country        string `json:"country,omitempty" gorm:"size:100"`
	Zip            string `json:"zip,omitempty" gorm:"size:20"`
	IsReturning    bool   `json:"isReturning"`
}
