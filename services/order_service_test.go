package services

import (
	"errors"
	"testing"

	"nomada-backend/models"
	"nomada-backend/utils"
)

func TestPlaceOrderTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, nil)
	mustCreateRoom(t, db, "304", models.RoomStatusAvailable)

	order, err := svc.PlaceOrder("304", []OrderLine{
		{Title: "The Nomad Morning", Category: "Breakfast", Price: "$28"},
		{Title: "Truffle Fries", Category: "Other", Price: "$16"},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if order.TotalCents != 4400 {
		t.Errorf("total = %d, want 4400", order.TotalCents)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want PENDING", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	// No checked-in booking, so the kitchen sees the generic name.
	if order.GuestName != "Guest" {
		t.Errorf("guest name = %q, want Guest", order.GuestName)
	}
}

func TestPlaceOrderResolvesGuestName(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	svc := NewOrderService(db, nil)
	mustCreateRoom(t, db, "101", models.RoomStatusAvailable)

	booking, err := bookings.CreateBooking(testGuest("Thomas Anderson"), "101",
		date(t, "2024-02-01"), date(t, "2024-02-05"), 1000, "")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if _, err := bookings.UpdateBookingStatus(booking.ID, models.BookingStatusCheckedIn); err != nil {
		t.Fatalf("check in: %v", err)
	}

	order, err := svc.PlaceOrder("101", []OrderLine{{Title: "Lobster Roll", Price: "$38"}})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.GuestName != "Thomas Anderson" {
		t.Errorf("guest name = %q, want Thomas Anderson", order.GuestName)
	}
}

func TestPlaceOrderInvalidPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, nil)

	_, err := svc.PlaceOrder("304", []OrderLine{{Title: "Mystery Dish", Price: "twenty"}})
	if !errors.Is(err, utils.ErrInvalidPrice) {
		t.Errorf("err = %v, want ErrInvalidPrice", err)
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders persisted = %d, want 0", count)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, nil)
	mustCreateRoom(t, db, "102", models.RoomStatusAvailable)

	order, err := svc.PlaceOrder("102", []OrderLine{{Title: "Saffron Risotto", Price: "$36"}})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	updated, err := svc.UpdateStatus(order.ID, models.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != models.OrderStatusPreparing {
		t.Errorf("status = %q, want PREPARING", updated.Status)
	}

	if _, err := svc.UpdateStatus(order.ID, "BURNT"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.UpdateStatus(9999, models.OrderStatusReady); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
