package services

import (
	"errors"
	"testing"

	"nomada-backend/models"
)

func TestPromotionToggle(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)

	promo := &models.Promotion{Title: "Spa Happy Hour", Type: models.PromotionTypeOffer, Active: true}
	if err := svc.Create(promo); err != nil {
		t.Fatalf("create promotion: %v", err)
	}

	toggled, err := svc.Toggle(promo.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.Active {
		t.Error("promotion still active after toggle")
	}

	active, err := svc.GetActive()
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	for _, p := range active {
		if p.ID == promo.ID {
			t.Error("inactive promotion still in guest feed")
		}
	}

	// Toggling twice restores the original state.
	toggled, err = svc.Toggle(promo.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if !toggled.Active {
		t.Error("promotion not active after second toggle")
	}
}

func TestPromotionValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewPromotionService(db)

	if err := svc.Create(&models.Promotion{Title: "Bad", Type: "FLASH_MOB"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Toggle(404); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(404); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
