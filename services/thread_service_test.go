package services

import (
	"errors"
	"testing"

	"nomada-backend/models"
)

func TestSendMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewThreadService(db)

	thread := models.MessageThread{GuestName: "Thomas Anderson", RoomNumber: "102", Channel: models.ChannelAirbnb}
	if err := db.Create(&thread).Error; err != nil {
		t.Fatalf("create thread: %v", err)
	}

	if _, err := svc.SendMessage(thread.ID, models.SenderHost, "Hello"); err != nil {
		t.Fatalf("host message: %v", err)
	}
	if _, err := svc.SendMessage(thread.ID, models.SenderGuest, "Extra pillow?"); err != nil {
		t.Fatalf("guest message: %v", err)
	}

	var reloaded models.MessageThread
	if err := db.Preload("Messages").First(&reloaded, thread.ID).Error; err != nil {
		t.Fatalf("reload thread: %v", err)
	}
	if len(reloaded.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(reloaded.Messages))
	}
	if reloaded.LastMessage != "Extra pillow?" {
		t.Errorf("last message = %q", reloaded.LastMessage)
	}
	// Only the guest message bumps the unread counter.
	if reloaded.UnreadCount != 1 {
		t.Errorf("unread = %d, want 1", reloaded.UnreadCount)
	}
}

func TestSendMessageValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewThreadService(db)

	if _, err := svc.SendMessage(999, models.SenderHost, "hello?"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	thread := models.MessageThread{GuestName: "Someone"}
	if err := db.Create(&thread).Error; err != nil {
		t.Fatalf("create thread: %v", err)
	}
	if _, err := svc.SendMessage(thread.ID, models.SenderHost, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.SendMessage(thread.ID, "ALIEN", "hi"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}
