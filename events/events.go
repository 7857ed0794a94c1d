package events

import (
	"context"
	"errors"
	"time"

	"fooddelivery/entity"

	"github.com/google/uuid"
)

const (
	OrderCreated       = "order.created"
	OrderAssigned      = "order.assigned"
	OrderStatusChanged = "order.status_changed"
)

// Event is the order notification published to the broker and the vendor feed.
type Event struct {
	EventID    string    `json:"eventId"`
	Name       string    `json:"name"`
	OrderID    string    `json:"orderId"`
	VendorID   string    `json:"vendorId"`
	CustomerID string    `json:"customerId"`
	DeliveryID string    `json:"deliveryId,omitempty"`
	Status     string    `json:"status"`
	Amount     float64   `json:"totalAmount"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewOrderEvent snapshots o under name.
func NewOrderEvent(name string, o *entity.Order) Event {
	return Event{
		EventID:    uuid.NewString(),
		Name:       name,
		OrderID:    o.ID,
		VendorID:   o.VendorID,
		CustomerID: o.CustomerID,
		DeliveryID: o.DeliveryID,
		Status:     o.OrderStatus,
		Amount:     o.TotalAmount,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Fanout delivers an event to every publisher and joins their errors.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
