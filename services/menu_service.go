package services

import (
	"errors"
	"fmt"
	"strings"

	"nomada-backend/models"

	"gorm.io/gorm"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// GetAvailable is the guest view: unavailable items are hidden, not deleted.
func (s *MenuService) GetAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Where("available = ?", true).Order("category, id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve menu: %w", err)
	}
	return items, nil
}

// GetAll is the admin/kitchen view including hidden items.
func (s *MenuService) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Order("category, id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve menu: %w", err)
	}
	return items, nil
}

func (s *MenuService) Create(item *models.MenuItem) error {
	if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Category) == "" {
		return fmt.Errorf("%w: title and category are required", ErrInvalidInput)
	}
	if item.PriceCents < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidInput)
	}
	if err := s.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (s *MenuService) Update(id uint, updated models.MenuItem) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if updated.PriceCents < 0 {
		return nil, fmt.Errorf("%w: negative price", ErrInvalidInput)
	}

	updates := map[string]interface{}{
		"category":              updated.Category,
		"title":                 updated.Title,
		"description":           updated.Description,
		"price_cents":           updated.PriceCents,
		"image":                 updated.Image,
		"is_vegetarian":         updated.IsVegetarian,
		"available":             updated.Available,
		"ingredients":           updated.Ingredients,
		"pairing_id":            updated.PairingID,
		"pairing_reason":        updated.PairingReason,
		"customization_options": updated.CustomizationOptions,
	}
	if err := s.DB.Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) Delete(id uint) error {
	result := s.DB.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
