// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"nomada-backend/models"
	"nomada-backend/utils"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB and owns the reservation lifecycle:
// availability, creation, status transitions and the room-status cascade.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// dayStart truncates to the date boundary; bookings are day-granular and
// the overlap test must not be skewed by time-of-day noise.
func dayStart(t time.Time) time.Time {
	return now.New(t.UTC()).BeginningOfDay()
}

// CheckAvailability reports whether the room is free for [checkIn, checkOut).
// Cancelled and checked-out bookings never block a room. Two ranges overlap
// iff s1 < e2 AND e1 > s2 (half-open: back-to-back checkout/checkin on the
// same date is allowed).
func (s *BookingService) CheckAvailability(roomNumber string, checkIn, checkOut time.Time) (bool, error) {
	start := dayStart(checkIn)
	end := dayStart(checkOut)

	var count int64
	err := s.DB.Model(&models.Booking{}).
		Where("room_number = ?", roomNumber).
		Where("status NOT IN ?", []string{models.BookingStatusCancelled, models.BookingStatusCheckedOut}).
		Where("check_in_date < ? AND check_out_date > ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("availability query failed: %w", err)
	}
	return count == 0, nil
}

// CreateBooking checks availability first; a conflict fails with
// ErrRoomUnavailable and no partial mutation. On success the booking starts
// CONFIRMED with all three compliance flags false. Room status is not
// touched at creation time, only at check-in.
func (s *BookingService) CreateBooking(
	guest models.Guest,
	roomNumber string,
	checkIn, checkOut time.Time,
	amountCents int64,
	doorCode string,
) (*models.Booking, error) {

	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" || strings.TrimSpace(guest.FullName) == "" {
		return nil, fmt.Errorf("%w: room number and guest name are required", ErrInvalidInput)
	}
	if amountCents < 0 {
		return nil, fmt.Errorf("%w: negative amount", ErrInvalidInput)
	}

	start := dayStart(checkIn)
	end := dayStart(checkOut)
	if !end.After(start) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidInput)
	}

	var room models.Room
	if err := s.DB.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %s", ErrNotFound, roomNumber)
		}
		return nil, fmt.Errorf("db error checking room %s: %w", roomNumber, err)
	}

	available, err := s.CheckAvailability(roomNumber, start, end)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrRoomUnavailable
	}

	booking := models.Booking{
		RoomNumber:       roomNumber,
		CheckInDate:      start,
		CheckOutDate:     end,
		Status:           models.BookingStatusConfirmed,
		TotalAmountCents: amountCents,
		Channel:          models.ChannelDirect,
		IsContractSigned: false,
		IsIdVerified:     false,
		IsDepositPaid:    false,
		ETA:              "Now",
		DoorCode:         strings.TrimSpace(doorCode),
	}

	// Reference codes are short; retry on the rare collision.
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&guest).Error; err != nil {
			return fmt.Errorf("failed to create guest: %w", err)
		}
		booking.GuestID = guest.ID

		var createErr error
		for attempt := 0; attempt < 5; attempt++ {
			ref, gErr := utils.GenerateBookingReference()
			if gErr != nil {
				return fmt.Errorf("failed to generate reference: %w", gErr)
			}
			booking.ReferenceCode = ref

			createErr = tx.Create(&booking).Error
			if createErr == nil {
				return nil
			}
			lc := strings.ToLower(createErr.Error())
			if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
				log.Printf("booking reference collision (attempt %d) - retrying", attempt+1)
				booking.ID = 0
				continue
			}
			return fmt.Errorf("failed to create booking: %w", createErr)
		}
		return fmt.Errorf("failed to create booking after retries: %w", createErr)
	})
	if txErr != nil {
		return nil, txErr
	}

	booking.Guest = guest
	return &booking, nil
}

// UpdateBookingStatus sets the status unconditionally (only the enum value
// is validated; any valid status is reachable from any other). Side effects:
// CHECKED_IN forces the room OCCUPIED and stamps checkedInAt, CHECKED_OUT
// forces the room DIRTY. Other statuses leave the room alone.
func (s *BookingService) UpdateBookingStatus(bookingID uint, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{"status": status}
		if status == models.BookingStatusCheckedIn {
			updates["checked_in_at"] = time.Now().UTC()
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}

		switch status {
		case models.BookingStatusCheckedIn:
			return setRoomStatus(tx, booking.RoomNumber, models.RoomStatusOccupied)
		case models.BookingStatusCheckedOut:
			return setRoomStatus(tx, booking.RoomNumber, models.RoomStatusDirty)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Guest").First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func setRoomStatus(tx *gorm.DB, roomNumber, status string) error {
	return tx.Model(&models.Room{}).
		Where("room_number = ?", roomNumber).
		Update("status", status).Error
}

// SignContract marks the booking's contract as signed.
func (s *BookingService) SignContract(bookingID uint) (*models.Booking, error) {
	return s.setFlag(bookingID, "is_contract_signed")
}

// VerifyIdentity marks the guest's ID as verified.
func (s *BookingService) VerifyIdentity(bookingID uint) (*models.Booking, error) {
	return s.setFlag(bookingID, "is_id_verified")
}

// MarkDepositPaid marks the deposit as received.
func (s *BookingService) MarkDepositPaid(bookingID uint) (*models.Booking, error) {
	return s.setFlag(bookingID, "is_deposit_paid")
}

func (s *BookingService) setFlag(bookingID uint, column string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Guest").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&booking).Update(column, true).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// IssueDoorCode generates and stores a fresh 4-digit smart-lock code.
func (s *BookingService) IssueDoorCode(bookingID uint) (string, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	code, err := utils.GenerateDigitCode(4)
	if err != nil {
		return "", fmt.Errorf("failed to generate door code: %w", err)
	}
	if err := s.DB.Model(&booking).Update("door_code", code).Error; err != nil {
		return "", err
	}
	return code, nil
}

// VerifyDoorCode checks a code against the room's live bookings. Cancelled
// and checked-out stays cannot open the door.
func (s *BookingService) VerifyDoorCode(roomNumber, code string) error {
	roomNumber = strings.TrimSpace(roomNumber)
	code = strings.TrimSpace(code)
	if roomNumber == "" || code == "" {
		return fmt.Errorf("%w: room number and code are required", ErrInvalidInput)
	}

	var count int64
	err := s.DB.Model(&models.Booking{}).
		Where("room_number = ? AND door_code = ?", roomNumber, code).
		Where("status NOT IN ?", []string{models.BookingStatusCancelled, models.BookingStatusCheckedOut}).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrWrongDoorCode
	}
	return nil
}

// GetAll returns bookings newest first, guest profile included.
func (s *BookingService) GetAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Preload("Guest").Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// GetByID loads one booking with its guest.
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Guest").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}
