package service

import (
	"context"
	"time"

	"store-service/internal/models"

	"github.com/google/uuid"
)

type OrderCreatedEvent struct {
	EventID    uuid.UUID          `json:"event_id"`
	OrderID    int                `json:"order_id"`
	CustomerID int                `json:"customer_id"`
	ProductID  int                `json:"product_id"`
	Quantity   float64            `json:"quantity"`
	Status     models.OrderStatus `json:"status"`
	OrderDate  time.Time          `json:"order_date"`
}

// EventBus publishes storefront purchases to the outside world. A nil
// bus disables publishing; delivery failures never fail the purchase.
type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
}
