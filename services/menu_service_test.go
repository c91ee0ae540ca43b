package services

import (
	"errors"
	"testing"

	"nomada-backend/models"
)

func TestMenuAvailabilityFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	onMenu := &models.MenuItem{Title: "Lobster Roll", Category: "Lunch", PriceCents: 3800, Available: true}
	if err := svc.Create(onMenu); err != nil {
		t.Fatalf("create item: %v", err)
	}
	eightySixed := &models.MenuItem{Title: "Sea Bass", Category: "Dinner", PriceCents: 3800}
	if err := svc.Create(eightySixed); err != nil {
		t.Fatalf("create item: %v", err)
	}
	if _, err := svc.Update(eightySixed.ID, models.MenuItem{
		Title: "Sea Bass", Category: "Dinner", PriceCents: 3800, Available: false,
	}); err != nil {
		t.Fatalf("hide item: %v", err)
	}

	visible, err := svc.GetAvailable()
	if err != nil {
		t.Fatalf("get available: %v", err)
	}
	for _, item := range visible {
		if item.ID == eightySixed.ID {
			t.Error("hidden item still on guest menu")
		}
	}

	all, err := svc.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin list = %d items, want 2", len(all))
	}
}

func TestMenuValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)

	if err := svc.Create(&models.MenuItem{Category: "Lunch"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing title: err = %v, want ErrInvalidInput", err)
	}
	if err := svc.Create(&models.MenuItem{Title: "Free Lunch", Category: "Lunch", PriceCents: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative price: err = %v, want ErrInvalidInput", err)
	}
	if err := svc.Delete(12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing: err = %v, want ErrNotFound", err)
	}
}

func TestTicketLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(db)

	ticket := &models.MaintenanceTicket{RoomNumber: "201", Issue: "Leak", Description: "AC dripping."}
	if err := svc.Create(ticket); err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	if ticket.Status != models.TicketStatusOpen {
		t.Errorf("status = %q, want OPEN", ticket.Status)
	}
	if ticket.Priority != models.TicketPriorityMedium {
		t.Errorf("priority = %q, want MEDIUM default", ticket.Priority)
	}

	updated, err := svc.UpdateStatus(ticket.ID, models.TicketStatusResolved)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != models.TicketStatusResolved {
		t.Errorf("status = %q, want RESOLVED", updated.Status)
	}

	if _, err := svc.UpdateStatus(ticket.ID, "IGNORED"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
}
