package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fooddelivery/entity"
	"fooddelivery/events"
	"fooddelivery/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFeedDeliversToOwningVendor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	feed := NewOrderFeed()
	go feed.Run(ctx)

	r := gin.New()
	r.GET("/feed", func(c *gin.Context) {
		utils.SetPrincipal(c, utils.Principal{ID: c.Query("vendor"), Role: entity.RoleVendor})
		feed.HandleWebSocket(c)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/feed?vendor=v1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return feed.Subscribers("v1") == 1 }, 2*time.Second, 10*time.Millisecond)

	other := events.NewOrderEvent(events.OrderCreated, &entity.Order{ID: "skip", VendorID: "v2"})
	mine := events.NewOrderEvent(events.OrderCreated, &entity.Order{ID: "o1", VendorID: "v1"})
	require.NoError(t, feed.Publish(ctx, other))
	require.NoError(t, feed.Publish(ctx, mine))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got events.Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "o1", got.OrderID)
	assert.Equal(t, events.OrderCreated, got.Name)
}

func TestOrderFeedPublishAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	feed := NewOrderFeed()
	stopped := make(chan struct{})
	go func() {
		feed.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	for i := 0; i < 100; i++ {
		assert.NoError(t, feed.Publish(context.Background(), events.Event{VendorID: "v"}))
	}
}
