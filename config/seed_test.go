package config

import (
	"fmt"
	"strings"
	"testing"

	"nomada-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestSeedFillsEmptyCollections(t *testing.T) {
	db := newTestDB(t)
	Seed(db)

	if n := count(t, db, &models.Room{}); n != 4 {
		t.Errorf("rooms = %d, want 4", n)
	}
	if n := count(t, db, &models.MenuItem{}); n != 12 {
		t.Errorf("menu items = %d, want 12", n)
	}
	if n := count(t, db, &models.Activity{}); n != 5 {
		t.Errorf("activities = %d, want 5", n)
	}
	if n := count(t, db, &models.Promotion{}); n != 2 {
		t.Errorf("promotions = %d, want 2", n)
	}
	if n := count(t, db, &models.GuestRequest{}); n != 2 {
		t.Errorf("guest requests = %d, want 2", n)
	}

	var booking models.Booking
	if err := db.Preload("Guest").Where("reference_code = ?", "BK-7829").First(&booking).Error; err != nil {
		t.Fatalf("seeded booking missing: %v", err)
	}
	if booking.Guest.FullName != "Isabella Rossellini" {
		t.Errorf("seeded guest = %q", booking.Guest.FullName)
	}
	if booking.DoorCode != "8821" {
		t.Errorf("door code = %q, want 8821", booking.DoorCode)
	}
	if booking.Status != models.BookingStatusCheckedOut {
		t.Errorf("status = %q, want CHECKED_OUT", booking.Status)
	}

	var settings models.HotelSetting
	if err := db.First(&settings).Error; err != nil {
		t.Fatalf("settings missing: %v", err)
	}
	if settings.Name != "Nomada Hotel & Suites" || settings.TaxRate != 0.10 {
		t.Errorf("settings = %q / %v", settings.Name, settings.TaxRate)
	}
}

func TestSeedPairingLinks(t *testing.T) {
	db := newTestDB(t)
	Seed(db)

	var burger, fries models.MenuItem
	if err := db.Where("title = ?", "Wagyu Beef Burger").First(&burger).Error; err != nil {
		t.Fatalf("burger missing: %v", err)
	}
	if err := db.Where("title = ?", "Truffle Fries").First(&fries).Error; err != nil {
		t.Fatalf("fries missing: %v", err)
	}
	if burger.PairingID == nil || *burger.PairingID != fries.ID {
		t.Errorf("burger pairing = %v, want %d", burger.PairingID, fries.ID)
	}
}

func TestSeedDoesNotOverwrite(t *testing.T) {
	db := newTestDB(t)
	Seed(db)

	extra := models.Room{RoomNumber: "999", Name: "Attic", Status: models.RoomStatusAvailable}
	if err := db.Create(&extra).Error; err != nil {
		t.Fatalf("create extra room: %v", err)
	}

	Seed(db)
	if n := count(t, db, &models.Room{}); n != 5 {
		t.Errorf("rooms after reseed = %d, want 5 (seed must not touch non-empty tables)", n)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	db := newTestDB(t)
	Seed(db)

	extra := models.Room{RoomNumber: "999", Name: "Attic", Status: models.RoomStatusAvailable}
	if err := db.Create(&extra).Error; err != nil {
		t.Fatalf("create extra room: %v", err)
	}

	if err := Reset(db); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n := count(t, db, &models.Room{}); n != 4 {
		t.Errorf("rooms after reset = %d, want 4", n)
	}
	// Admin accounts survive the wipe.
	if n := count(t, db, &models.Admin{}); n != 1 {
		t.Errorf("admins after reset = %d, want 1", n)
	}
}
