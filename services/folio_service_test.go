package services

import (
	"errors"
	"testing"

	"nomada-backend/models"
)

func TestFolioMath(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	orders := NewOrderService(db, nil)
	svc := NewFolioService(db)

	mustCreateSettings(t, db, 0.10)
	mustCreateRoom(t, db, "304", models.RoomStatusAvailable)

	booking, err := bookings.CreateBooking(testGuest("Isabella Rossellini"), "304",
		date(t, "2024-02-01"), date(t, "2024-02-05"), 100000, "")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if _, err := bookings.UpdateBookingStatus(booking.ID, models.BookingStatusCheckedIn); err != nil {
		t.Fatalf("check in: %v", err)
	}

	if _, err := orders.PlaceOrder("304", []OrderLine{
		{Title: "The Nomad Morning", Price: "$28"},
		{Title: "Truffle Fries", Price: "$16"},
	}); err != nil {
		t.Fatalf("place order: %v", err)
	}

	folio, err := svc.GetForRoom("304")
	if err != nil {
		t.Fatalf("get folio: %v", err)
	}

	if folio.GuestName != "Isabella Rossellini" {
		t.Errorf("guest = %q", folio.GuestName)
	}
	// Accommodation + two dining lines.
	if len(folio.Lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(folio.Lines))
	}
	if folio.SubtotalCents != 104400 {
		t.Errorf("subtotal = %d, want 104400", folio.SubtotalCents)
	}
	if folio.TaxCents != 10440 {
		t.Errorf("tax = %d, want 10440", folio.TaxCents)
	}
	if folio.TotalCents != 114840 {
		t.Errorf("total = %d, want 114840", folio.TotalCents)
	}
}

func TestFolioNoCheckedInBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewFolioService(db)
	mustCreateSettings(t, db, 0.10)
	mustCreateRoom(t, db, "201", models.RoomStatusAvailable)

	if _, err := svc.GetForRoom("201"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestOverviewRevenue(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	orders := NewOrderService(db, nil)
	svc := NewFolioService(db)

	mustCreateSettings(t, db, 0.10)
	mustCreateRoom(t, db, "101", models.RoomStatusAvailable)
	mustCreateRoom(t, db, "102", models.RoomStatusAvailable)

	// CONFIRMED bookings do not count toward revenue until check-in.
	if _, err := bookings.CreateBooking(testGuest("Pending Guest"), "101",
		date(t, "2024-03-01"), date(t, "2024-03-05"), 50000, ""); err != nil {
		t.Fatalf("create confirmed booking: %v", err)
	}

	checkedIn, err := bookings.CreateBooking(testGuest("Staying Guest"), "102",
		date(t, "2024-03-01"), date(t, "2024-03-05"), 80000, "")
	if err != nil {
		t.Fatalf("create second booking: %v", err)
	}
	if _, err := bookings.UpdateBookingStatus(checkedIn.ID, models.BookingStatusCheckedIn); err != nil {
		t.Fatalf("check in: %v", err)
	}

	if _, err := orders.PlaceOrder("102", []OrderLine{{Title: "Lobster Roll", Price: "$38"}}); err != nil {
		t.Fatalf("place order: %v", err)
	}

	stats, err := svc.Overview()
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	// 80000 booking + 3800 order.
	if stats.RevenueCents != 83800 {
		t.Errorf("revenue = %d, want 83800", stats.RevenueCents)
	}
	if stats.ActiveBookings != 2 {
		t.Errorf("active bookings = %d, want 2", stats.ActiveBookings)
	}
	if stats.RoomsByStatus[models.RoomStatusOccupied] != 1 {
		t.Errorf("occupied rooms = %d, want 1", stats.RoomsByStatus[models.RoomStatusOccupied])
	}
}
