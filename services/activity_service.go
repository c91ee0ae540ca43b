package services

import (
	"errors"
	"fmt"
	"strings"

	"nomada-backend/models"

	"gorm.io/gorm"
)

type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

func (s *ActivityService) GetAll() ([]models.Activity, error) {
	var list []models.Activity
	if err := s.DB.Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve activities: %w", err)
	}
	return list, nil
}

func (s *ActivityService) Create(activity *models.Activity) error {
	if strings.TrimSpace(activity.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if activity.PriceCents < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidInput)
	}
	if err := s.DB.Create(activity).Error; err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

func (s *ActivityService) Update(id uint, updated models.Activity) (*models.Activity, error) {
	var activity models.Activity
	if err := s.DB.First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       updated.Title,
		"subtitle":    updated.Subtitle,
		"category":    updated.Category,
		"description": updated.Description,
		"duration":    updated.Duration,
		"rating":      updated.Rating,
		"price_cents": updated.PriceCents,
		"image":       updated.Image,
		"highlights":  updated.Highlights,
	}
	if err := s.DB.Model(&activity).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.DB.First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) Delete(id uint) error {
	result := s.DB.Delete(&models.Activity{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
