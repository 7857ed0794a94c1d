package ws

import (
	"context"
	"log"
	"net/http"
	"sync"

	"fooddelivery/events"
	"fooddelivery/pkg/resp"
	"fooddelivery/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderFeed pushes order events to the websocket connections of the vendor
// the order belongs to.
type OrderFeed struct {
	clients    map[string]map[*websocket.Conn]bool // vendorID -> connections
	broadcast  chan events.Event
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
}

// Subscription is one vendor connection.
type Subscription struct {
	Conn     *websocket.Conn
	VendorID string
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan events.Event, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
	}
}

// Run serves register, unregister and broadcast until ctx is done, then
// closes every connection.
func (h *OrderFeed) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for vendorID, conns := range h.clients {
				for conn := range conns {
					conn.Close()
				}
				delete(h.clients, vendorID)
			}
			h.mu.Unlock()
			return

		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.VendorID] == nil {
				h.clients[sub.VendorID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.VendorID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.VendorID][sub.Conn]; ok {
				delete(h.clients[sub.VendorID], sub.Conn)
				sub.Conn.Close()
			}
			if len(h.clients[sub.VendorID]) == 0 {
				delete(h.clients, sub.VendorID)
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.VendorID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("order feed write error: %v", err)
					conn.Close()
					delete(h.clients[ev.VendorID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues ev for the vendor's connections.
func (h *OrderFeed) Publish(ctx context.Context, ev events.Event) error {
	select {
	case h.broadcast <- ev:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribers reports how many connections vendorID has open.
func (h *OrderFeed) Subscribers(vendorID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[vendorID])
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades GET /vendor/orders/feed for the authenticated vendor.
func (h *OrderFeed) HandleWebSocket(c *gin.Context) {
	p, ok := utils.CurrentPrincipal(c)
	if !ok {
		resp.Unauthorized(c, "Not authorized")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, VendorID: p.ID}
	select {
	case h.register <- sub:
		go h.listen(sub)
	case <-h.done:
		conn.Close()
	}
}

// listen drains client frames until the connection closes. The feed is
// server-to-client only.
func (h *OrderFeed) listen(sub Subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error: %v", err)
			}
			return
		}
	}
}
