package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"nomada-backend/models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return parsed
}

func testGuest(name string) models.Guest {
	return models.Guest{FullName: name, Email: "guest@test.local", Nationality: "Italian"}
}

func TestCheckAvailabilityOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	mustCreateRoom(t, db, "304", models.RoomStatusAvailable)

	if _, err := svc.CreateBooking(testGuest("Isabella Rossellini"), "304",
		date(t, "2024-01-10"), date(t, "2024-01-15"), 450000, ""); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	available, err := svc.CheckAvailability("304", date(t, "2024-01-12"), date(t, "2024-01-14"))
	if err != nil {
		t.Fatalf("check availability: %v", err)
	}
	if available {
		t.Error("overlapping window reported as available")
	}

	// Check-out day is exclusive; a stay starting that day does not clash.
	available, err = svc.CheckAvailability("304", date(t, "2024-01-15"), date(t, "2024-01-18"))
	if err != nil {
		t.Fatalf("check availability: %v", err)
	}
	if !available {
		t.Error("back-to-back window reported as unavailable")
	}
}

func TestCreateBookingDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	mustCreateRoom(t, db, "101", models.RoomStatusAvailable)

	booking, err := svc.CreateBooking(testGuest("Thomas Anderson"), "101",
		date(t, "2024-02-01"), date(t, "2024-02-03"), 30000, "")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if booking.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %q, want CONFIRMED", booking.Status)
	}
	if booking.Channel != models.ChannelDirect {
		t.Errorf("channel = %q, want DIRECT", booking.Channel)
	}
	if booking.ETA != "Now" {
		t.Errorf("eta = %q, want Now", booking.ETA)
	}
	if booking.IsContractSigned || booking.IsIdVerified || booking.IsDepositPaid {
		t.Error("compliance flags should start false")
	}
	if !strings.HasPrefix(booking.ReferenceCode, "BK-") {
		t.Errorf("reference %q missing BK- prefix", booking.ReferenceCode)
	}
	if booking.Guest.ID == 0 {
		t.Error("guest profile was not persisted")
	}
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.CreateBooking(testGuest("Nobody"), "999",
		date(t, "2024-02-01"), date(t, "2024-02-03"), 1000, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	mustCreateRoom(t, db, "201", models.RoomStatusAvailable)

	if _, err := svc.CreateBooking(testGuest("First"), "201",
		date(t, "2024-03-01"), date(t, "2024-03-05"), 1000, ""); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	_, err := svc.CreateBooking(testGuest("Second"), "201",
		date(t, "2024-03-04"), date(t, "2024-03-06"), 1000, "")
	if !errors.Is(err, ErrRoomUnavailable) {
		t.Errorf("err = %v, want ErrRoomUnavailable", err)
	}
}

func TestStatusCascade(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	// Cascade ignores the room's prior state.
	mustCreateRoom(t, db, "304", models.RoomStatusDirty)

	booking, err := svc.CreateBooking(testGuest("Isabella Rossellini"), "304",
		date(t, "2024-04-01"), date(t, "2024-04-05"), 450000, "")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	checkedIn, err := svc.UpdateBookingStatus(booking.ID, models.BookingStatusCheckedIn)
	if err != nil {
		t.Fatalf("check in: %v", err)
	}
	if checkedIn.CheckedInAt == nil {
		t.Error("checkedInAt not stamped on check-in")
	}

	var room models.Room
	if err := db.Where("room_number = ?", "304").First(&room).Error; err != nil {
		t.Fatalf("load room: %v", err)
	}
	if room.Status != models.RoomStatusOccupied {
		t.Errorf("room status after check-in = %q, want OCCUPIED", room.Status)
	}

	if _, err := svc.UpdateBookingStatus(booking.ID, models.BookingStatusCheckedOut); err != nil {
		t.Fatalf("check out: %v", err)
	}
	if err := db.Where("room_number = ?", "304").First(&room).Error; err != nil {
		t.Fatalf("reload room: %v", err)
	}
	if room.Status != models.RoomStatusDirty {
		t.Errorf("room status after check-out = %q, want DIRTY", room.Status)
	}
}

func TestUpdateBookingStatusValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	if _, err := svc.UpdateBookingStatus(1, "SLEEPING"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.UpdateBookingStatus(42, models.BookingStatusConfirmed); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestComplianceFlags(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	mustCreateRoom(t, db, "102", models.RoomStatusAvailable)

	booking, err := svc.CreateBooking(testGuest("Signer"), "102",
		date(t, "2024-05-01"), date(t, "2024-05-02"), 1000, "")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := svc.SignContract(booking.ID); err != nil {
		t.Fatalf("sign contract: %v", err)
	}
	if _, err := svc.VerifyIdentity(booking.ID); err != nil {
		t.Fatalf("verify identity: %v", err)
	}
	updated, err := svc.MarkDepositPaid(booking.ID)
	if err != nil {
		t.Fatalf("mark deposit: %v", err)
	}

	reloaded, err := svc.GetByID(updated.ID)
	if err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if !reloaded.IsContractSigned || !reloaded.IsIdVerified || !reloaded.IsDepositPaid {
		t.Errorf("flags = %v %v %v, want all true",
			reloaded.IsContractSigned, reloaded.IsIdVerified, reloaded.IsDepositPaid)
	}
}

func TestDoorCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	mustCreateRoom(t, db, "304", models.RoomStatusAvailable)

	booking, err := svc.CreateBooking(testGuest("Isabella Rossellini"), "304",
		date(t, "2024-06-01"), date(t, "2024-06-05"), 1000, "")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	code, err := svc.IssueDoorCode(booking.ID)
	if err != nil {
		t.Fatalf("issue door code: %v", err)
	}
	if len(code) != 4 {
		t.Fatalf("door code %q, want 4 digits", code)
	}

	if err := svc.VerifyDoorCode("304", code); err != nil {
		t.Errorf("valid code rejected: %v", err)
	}
	if err := svc.VerifyDoorCode("304", "0001"); !errors.Is(err, ErrWrongDoorCode) {
		t.Errorf("wrong code: err = %v, want ErrWrongDoorCode", err)
	}

	// A checked-out stay can no longer open the door.
	if _, err := svc.UpdateBookingStatus(booking.ID, models.BookingStatusCheckedOut); err != nil {
		t.Fatalf("check out: %v", err)
	}
	if err := svc.VerifyDoorCode("304", code); !errors.Is(err, ErrWrongDoorCode) {
		t.Errorf("code after checkout: err = %v, want ErrWrongDoorCode", err)
	}
}
