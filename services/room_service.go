package services

import (
	"errors"
	"fmt"
	"strings"

	"nomada-backend/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

// Create adds a room. Room numbers are unique; a clash maps the driver's
// duplicate-key error to ErrDuplicateRoom instead of leaking SQL details.
func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if !models.ValidRoomStatus(room.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, room.Status)
	}

	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateRoom
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// UpdateStatus is a direct set with no lifecycle guard; housekeeping and
// maintenance flip statuses freely.
func (s *RoomService) UpdateStatus(roomNumber, status string) (*models.Room, error) {
	if !models.ValidRoomStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var room models.Room
	if err := s.DB.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&room).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	// sqlite (tests) reports unique violations textually
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "unique") || strings.Contains(lc, "duplicate")
}
