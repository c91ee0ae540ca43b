package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nomada-backend/models"

	"gorm.io/gorm"
)

type ThreadService struct {
	DB *gorm.DB
}

func NewThreadService(db *gorm.DB) *ThreadService {
	return &ThreadService{DB: db}
}

func (s *ThreadService) GetAll() ([]models.MessageThread, error) {
	var threads []models.MessageThread
	err := s.DB.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("sent_at")
	}).Order("updated_at DESC").Find(&threads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve threads: %w", err)
	}
	return threads, nil
}

// SendMessage appends to a thread; messages are never edited or removed.
// Guest messages bump the unread counter, host/system replies do not.
func (s *ThreadService) SendMessage(threadID uint, sender, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty message", ErrInvalidInput)
	}
	if sender == "" {
		sender = models.SenderHost
	}
	switch sender {
	case models.SenderGuest, models.SenderHost, models.SenderSystem:
	default:
		return nil, fmt.Errorf("%w: sender %q", ErrInvalidInput, sender)
	}

	var msg models.Message
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var thread models.MessageThread
		if err := tx.First(&thread, threadID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		msg = models.Message{
			ThreadID: thread.ID,
			Sender:   sender,
			Text:     text,
			SentAt:   time.Now().UTC(),
		}
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{"last_message": text}
		if sender == models.SenderGuest {
			updates["unread_count"] = thread.UnreadCount + 1
		}
		return tx.Model(&thread).Updates(updates).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &msg, nil
}
