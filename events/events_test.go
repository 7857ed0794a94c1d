package events

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	got []Event
	err error
}

func (r *recorder) Publish(_ context.Context, ev Event) error {
	r.got = append(r.got, ev)
	return r.err
}

func TestNewOrderEvent(t *testing.T) {
	o := &entity.Order{ID: "o1", VendorID: "v1", CustomerID: "c1", OrderStatus: entity.OrderWaiting, TotalAmount: 90}
	ev := NewOrderEvent(OrderCreated, o)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, OrderCreated, ev.Name)
	assert.Equal(t, "v1", ev.VendorID)
	assert.Equal(t, entity.OrderWaiting, ev.Status)
	assert.Equal(t, 90.0, ev.Amount)
	assert.False(t, ev.OccurredAt.IsZero())
}

func TestFanoutDeliversToAllAndJoinsErrors(t *testing.T) {
	ok := &recorder{}
	boom := &recorder{err: errors.New("broker down")}
	f := Fanout{ok, nil, boom}

	err := f.Publish(context.Background(), Event{Name: OrderAssigned})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
	assert.Len(t, ok.got, 1)
	assert.Len(t, boom.got, 1)
}
