package services

import (
	"errors"
	"fmt"
	"math"

	"nomada-backend/models"

	"gorm.io/gorm"
)

// FolioLine is one charge on a guest's running bill.
type FolioLine struct {
	Description string `json:"description"`
	AmountCents int64  `json:"amountCents"`
}

// Folio is the live bill for a checked-in room: the accommodation charge
// from the booking plus every dining order placed from that room, with tax
// applied on top at the configured rate.
type Folio struct {
	RoomNumber    string      `json:"roomNumber"`
	GuestName     string      `json:"guestName"`
	Lines         []FolioLine `json:"lines"`
	SubtotalCents int64       `json:"subtotalCents"`
	TaxCents      int64       `json:"taxCents"`
	TotalCents    int64       `json:"totalCents"`
}

// OverviewStats powers the admin dashboard header cards.
type OverviewStats struct {
	RevenueCents    int64          `json:"revenueCents"`
	RoomsByStatus   map[string]int `json:"roomsByStatus"`
	OpenTickets     int64          `json:"openTickets"`
	PendingRequests int64          `json:"pendingRequests"`
	ActiveBookings  int64          `json:"activeBookings"`
}

type FolioService struct {
	DB *gorm.DB
}

func NewFolioService(db *gorm.DB) *FolioService {
	return &FolioService{DB: db}
}

// GetForRoom builds the folio for the room's checked-in booking.
func (s *FolioService) GetForRoom(roomNumber string) (*Folio, error) {
	var booking models.Booking
	err := s.DB.Preload("Guest").
		Where("room_number = ? AND status = ?", roomNumber, models.BookingStatusCheckedIn).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	folio := &Folio{
		RoomNumber: roomNumber,
		GuestName:  booking.Guest.FullName,
		Lines: []FolioLine{
			{Description: "Accommodation", AmountCents: booking.TotalAmountCents},
		},
		SubtotalCents: booking.TotalAmountCents,
	}

	var orders []models.Order
	if err := s.DB.Preload("Items").
		Where("room_number = ?", roomNumber).
		Order("placed_at").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load room orders: %w", err)
	}
	for _, order := range orders {
		for _, item := range order.Items {
			folio.Lines = append(folio.Lines, FolioLine{
				Description: item.Title,
				AmountCents: item.PriceCents,
			})
			folio.SubtotalCents += item.PriceCents
		}
	}

	var settings models.HotelSetting
	if err := s.DB.First(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to load hotel settings: %w", err)
	}
	folio.TaxCents = int64(math.Round(float64(folio.SubtotalCents) * settings.TaxRate))
	folio.TotalCents = folio.SubtotalCents + folio.TaxCents
	return folio, nil
}

// Overview aggregates the numbers shown on the admin dashboard. Revenue
// counts every order ever placed plus bookings that reached check-in.
func (s *FolioService) Overview() (*OverviewStats, error) {
	stats := &OverviewStats{RoomsByStatus: map[string]int{}}

	var orderRevenue struct{ Total int64 }
	if err := s.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_cents), 0) AS total").
		Scan(&orderRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum order revenue: %w", err)
	}

	var bookingRevenue struct{ Total int64 }
	if err := s.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount_cents), 0) AS total").
		Where("status IN ?", []string{models.BookingStatusCheckedIn, models.BookingStatusCheckedOut}).
		Scan(&bookingRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum booking revenue: %w", err)
	}
	stats.RevenueCents = orderRevenue.Total + bookingRevenue.Total

	var roomCounts []struct {
		Status string
		N      int
	}
	if err := s.DB.Model(&models.Room{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&roomCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	for _, rc := range roomCounts {
		stats.RoomsByStatus[rc.Status] = rc.N
	}

	if err := s.DB.Model(&models.MaintenanceTicket{}).
		Where("status <> ?", models.TicketStatusResolved).
		Count(&stats.OpenTickets).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.GuestRequest{}).
		Where("status = ?", models.RequestStatusPending).
		Count(&stats.PendingRequests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Booking{}).
		Where("status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&stats.ActiveBookings).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
