package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fooddelivery/entity"
	"fooddelivery/events"
	"fooddelivery/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRabbitPublisherPublishesOrderCreated(t *testing.T) {
	conn := testutil.StartRabbitMQ(t)

	pub, err := events.NewRabbitPublisher(conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pub.Close() })

	o := &entity.Order{ID: "o-1", VendorID: "v-1", CustomerID: "c-1", OrderStatus: entity.OrderWaiting}
	sent := events.NewOrderEvent(events.OrderCreated, o)
	require.NoError(t, pub.Publish(context.Background(), sent))

	ch, err := conn.Channel()
	require.NoError(t, err)
	t.Cleanup(func() { _ = ch.Close() })

	deliveries, err := ch.Consume(events.OrderCreated, "", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		assert.Equal(t, "application/json", d.ContentType)
		var got events.Event
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, sent.EventID, got.EventID)
		assert.Equal(t, "v-1", got.VendorID)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for order.created")
	}
}
