package services

import (
	"fmt"
	"strings"
	"testing"

	"nomada-backend/config"
	"nomada-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
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
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func mustCreateRoom(t *testing.T, db *gorm.DB, number, status string) {
	t.Helper()
	room := models.Room{RoomNumber: number, Name: "Room " + number, Type: "Suite", Status: status}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create room %s: %v", number, err)
	}
}

func mustCreateSettings(t *testing.T, db *gorm.DB, taxRate float64) {
	t.Helper()
	settings := models.HotelSetting{Name: "Test Hotel", Currency: "$", TaxRate: taxRate, Email: "desk@test.local"}
	if err := db.Create(&settings).Error; err != nil {
		t.Fatalf("create settings: %v", err)
	}
}
