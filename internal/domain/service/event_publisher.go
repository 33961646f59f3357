package service

import (
	"context"
)

// OrderEvent represents an order lifecycle event published for downstream
// consumers (notifications, analytics). Publishing is best effort and always
// happens after the owning transaction commits.
type OrderEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	EventType    string `json:"event_type"`           // "order.created" or "order.status_changed"
	OrderID      string `json:"order_id"`
	CustomerID   string `json:"customer_id"`
	RestaurantID string `json:"restaurant_id"`
	FromStatus   string `json:"from_status,omitempty"`
	ToStatus     string `json:"to_status"`
	PayPrice     int64  `json:"pay_price"`
}

// Event type values carried in OrderEvent.EventType.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
