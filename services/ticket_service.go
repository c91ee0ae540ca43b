package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"nomada-backend/models"

	"gorm.io/gorm"
)

type TicketService struct {
	DB *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{DB: db}
}

func (s *TicketService) Create(ticket *models.MaintenanceTicket) error {
	if strings.TrimSpace(ticket.RoomNumber) == "" || strings.TrimSpace(ticket.Issue) == "" {
		return fmt.Errorf("%w: room number and issue are required", ErrInvalidInput)
	}
	if ticket.Priority == "" {
		ticket.Priority = models.TicketPriorityMedium
	}
	if !models.ValidTicketPriority(ticket.Priority) {
		return fmt.Errorf("%w: priority %q", ErrInvalidInput, ticket.Priority)
	}
	ticket.Status = models.TicketStatusOpen
	if ticket.ReportedAt.IsZero() {
		ticket.ReportedAt = time.Now().UTC()
	}
	if err := s.DB.Create(ticket).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

func (s *TicketService) UpdateStatus(id uint, status string) (*models.MaintenanceTicket, error) {
	if !models.ValidTicketStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var ticket models.MaintenanceTicket
	if err := s.DB.First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&ticket).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *TicketService) GetAll() ([]models.MaintenanceTicket, error) {
	var list []models.MaintenanceTicket
	if err := s.DB.Order("reported_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve tickets: %w", err)
	}
	return list, nil
}
