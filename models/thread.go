package models

import "time"

const (
	SenderGuest  = "GUEST"
	SenderHost   = "HOST"
	SenderSystem = "SYSTEM"
)

type MessageThread struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	GuestName   string    `json:"guestName" gorm:"size:255"`
	RoomNumber  string    `gorm:"column:room_number;size:50" json:"roomNumber,omitempty"`
	Channel     string    `json:"channel" gorm:"size:32"`
	LastMessage string    `json:"lastMessage" gorm:"size:512"`
	UnreadCount int       `json:"unreadCount"`
	Messages    []Message `gorm:"foreignKey:ThreadID" json:"messages"`
}

// Messages are append-only within a thread.
type Message struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ThreadID uint      `gorm:"index;column:thread_id" json:"-"`
	Sender   string    `json:"sender" gorm:"size:16"`
	Text     string    `json:"text" gorm:"type:text"`
	SentAt   time.Time `json:"sentAt"`
}
