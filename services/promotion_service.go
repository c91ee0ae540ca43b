package services

import (
	"errors"
	"fmt"
	"strings"

	"nomada-backend/models"

	"gorm.io/gorm"
)

type PromotionService struct {
	DB *gorm.DB
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{DB: db}
}

// GetActive feeds the guest promotion rail.
func (s *PromotionService) GetActive() ([]models.Promotion, error) {
	var list []models.Promotion
	if err := s.DB.Where("active = ?", true).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve promotions: %w", err)
	}
	return list, nil
}

func (s *PromotionService) GetAll() ([]models.Promotion, error) {
	var list []models.Promotion
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve promotions: %w", err)
	}
	return list, nil
}

func (s *PromotionService) Create(promo *models.Promotion) error {
	if strings.TrimSpace(promo.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !models.ValidPromotionType(promo.Type) {
		return fmt.Errorf("%w: promotion type %q", ErrInvalidInput, promo.Type)
	}
	if err := s.DB.Create(promo).Error; err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

// Toggle flips the active flag; toggling twice restores the original state.
func (s *PromotionService) Toggle(id uint) (*models.Promotion, error) {
	var promo models.Promotion
	if err := s.DB.First(&promo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&promo).Update("active", !promo.Active).Error; err != nil {
		return nil, err
	}
	promo.Active = !promo.Active
	return &promo, nil
}

func (s *PromotionService) Delete(id uint) error {
	result := s.DB.Delete(&models.Promotion{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete promotion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
