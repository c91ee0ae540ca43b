package services

import (
	"errors"
	"fmt"
	"strings"

	"nomada-backend/models"

	"gorm.io/gorm"
)

// RequestService handles the generic "send to the desk" tickets raised by
// guest-facing actions (transport, spa, housekeeping, ...).
type RequestService struct {
	DB *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{DB: db}
}

// Create always starts a request PENDING. The guest name comes from the
// room's checked-in booking; without one the desk sees "Guest (Room N)".
func (s *RequestService) Create(roomNumber, reqType, title, details string) (*models.GuestRequest, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" || strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: room number and title are required", ErrInvalidInput)
	}
	if !models.ValidRequestType(reqType) {
		return nil, fmt.Errorf("%w: request type %q", ErrInvalidInput, reqType)
	}

	guestName := fmt.Sprintf("Guest (Room %s)", roomNumber)
	var booking models.Booking
	err := s.DB.Preload("Guest").
		Where("room_number = ? AND status = ?", roomNumber, models.BookingStatusCheckedIn).
		First(&booking).Error
	if err == nil && booking.Guest.FullName != "" {
		guestName = booking.Guest.FullName
	}

	req := models.GuestRequest{
		GuestName:  guestName,
		RoomNumber: roomNumber,
		Type:       reqType,
		Title:      strings.TrimSpace(title),
		Details:    details,
		Status:     models.RequestStatusPending,
	}
	if err := s.DB.Create(&req).Error; err != nil {
		return nil, fmt.Errorf("failed to create guest request: %w", err)
	}
	return &req, nil
}

// UpdateStatus moves a request through the pipeline; any status is
// reachable from any other. Blank notes keep the existing notes.
func (s *RequestService) UpdateStatus(id uint, status, notes string) (*models.GuestRequest, error) {
	if !models.ValidRequestStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var req models.GuestRequest
	if err := s.DB.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if strings.TrimSpace(notes) != "" {
		updates["notes"] = notes
	}
	if err := s.DB.Model(&req).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *RequestService) GetAll() ([]models.GuestRequest, error) {
	var list []models.GuestRequest
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve guest requests: %w", err)
	}
	return list, nil
}
