package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"nomada-backend/models"
	"nomada-backend/queue"
	"nomada-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderEventPublisher is satisfied by queue.Publisher; nil disables events.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event queue.OrderPlacedEvent) error
}

type OrderService struct {
	DB     *gorm.DB
	Events OrderEventPublisher
}

func NewOrderService(db *gorm.DB, events OrderEventPublisher) *OrderService {
	return &OrderService{DB: db, Events: events}
}

// OrderLine is the guest-facing order payload. Prices arrive either as
// integer cents or as the menu's display string ("$28"); the string form is
// parsed exactly once, here at the boundary.
type OrderLine struct {
	MenuItemID      *uint    `json:"menuItemId,omitempty"`
	Title           string   `json:"title"`
	Category        string   `json:"category,omitempty"`
	Price           string   `json:"price,omitempty"`
	PriceCents      *int64   `json:"priceCents,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	SelectedOptions []string `json:"selectedOptions,omitempty"`
}

// PlaceOrder creates a PENDING order for the room. The total is the sum of
// line prices; a malformed price string fails the whole order with
// ErrInvalidPrice rather than silently dropping the line. The guest name
// comes from the room's checked-in booking, falling back to "Guest".
func (s *OrderService) PlaceOrder(roomNumber string, lines []OrderLine) (*models.Order, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order has no items", ErrInvalidInput)
	}

	items := make([]models.OrderItem, 0, len(lines))
	var total int64
	for _, line := range lines {
		if strings.TrimSpace(line.Title) == "" {
			return nil, fmt.Errorf("%w: order item without title", ErrInvalidInput)
		}

		var cents int64
		if line.PriceCents != nil {
			if *line.PriceCents < 0 {
				return nil, fmt.Errorf("%w: negative price for %q", utils.ErrInvalidPrice, line.Title)
			}
			cents = *line.PriceCents
		} else {
			parsed, err := utils.ParsePriceCents(line.Price)
			if err != nil {
				return nil, fmt.Errorf("%w: %q on item %q", utils.ErrInvalidPrice, line.Price, line.Title)
			}
			cents = parsed
		}
		total += cents

		item := models.OrderItem{
			MenuItemID: line.MenuItemID,
			Title:      strings.TrimSpace(line.Title),
			Category:   strings.TrimSpace(line.Category),
			PriceCents: cents,
			Notes:      strings.TrimSpace(line.Notes),
		}
		if len(line.SelectedOptions) > 0 {
			raw, err := json.Marshal(line.SelectedOptions)
			if err == nil {
				item.SelectedOptions = datatypes.JSON(raw)
			}
		}
		items = append(items, item)
	}

	order := models.Order{
		RoomNumber: roomNumber,
		GuestName:  s.resolveGuestName(roomNumber),
		Status:     models.OrderStatusPending,
		PlacedAt:   time.Now().UTC(),
		TotalCents: total,
		Items:      items,
	}

	if err := s.DB.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishPlaced(&order)
	return &order, nil
}

func (s *OrderService) resolveGuestName(roomNumber string) string {
	var booking models.Booking
	err := s.DB.Preload("Guest").
		Where("room_number = ? AND status = ?", roomNumber, models.BookingStatusCheckedIn).
		First(&booking).Error
	if err != nil || booking.Guest.FullName == "" {
		return "Guest"
	}
	return booking.Guest.FullName
}

func (s *OrderService) publishPlaced(order *models.Order) {
	if s.Events == nil {
		return
	}
	evt := queue.OrderPlacedEvent{
		OrderID:    order.ID,
		RoomNumber: order.RoomNumber,
		GuestName:  order.GuestName,
		TotalCents: order.TotalCents,
		PlacedAt:   order.PlacedAt.Format(time.RFC3339),
	}
	for _, item := range order.Items {
		evt.Items = append(evt.Items, queue.OrderPlacedItem{
			Title:      item.Title,
			PriceCents: item.PriceCents,
			Notes:      item.Notes,
		})
	}
	// fire-and-forget; the kitchen feed must never block a guest order
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Events.PublishOrderPlaced(ctx, evt)
	}()
}

// UpdateStatus advances an order through the kitchen pipeline. Only the
// enum value is validated; the store permits any direct set, as the
// display's buttons are what enforce the forward-only flow.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAll returns every order, newest first, for the kitchen display.
func (s *OrderService) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Preload("Items").Order("placed_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// GetForRoom lists a room's orders; the folio sums these.
func (s *OrderService) GetForRoom(roomNumber string) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("Items").
		Where("room_number = ?", roomNumber).
		Order("placed_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve room orders: %w", err)
	}
	return orders, nil
}
