// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderPlacedEvent is published when a guest submits a dining order. It
// carries enough for kitchen displays and analytics consumers to act
// without querying the primary database.
type OrderPlacedEvent struct {
	OrderID    uint              `json:"order_id"`
	RoomNumber string            `json:"room_number"`
	GuestName  string            `json:"guest_name"`
	Items      []OrderPlacedItem `json:"items"`
	TotalCents int64             `json:"total_cents"`
	PlacedAt   string            `json:"placed_at"`
}

type OrderPlacedItem struct {
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
	Notes      string `json:"notes,omitempty"`
}
