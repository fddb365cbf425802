package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"zebratime/internal/domain"
)

type Event struct {
	Type    string          `json:"type"`
	At      time.Time       `json:"at"`
	Booking *domain.Booking `json:"booking,omitempty"`
}

// Hub fans booking events out to the dashboard sockets of each business.
type Hub struct {
	conns map[int64]map[*websocket.Conn]struct{}
	mutex sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[int64]map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Register(businessID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	set, exists := h.conns[businessID]
	if !exists {
		set = make(map[*websocket.Conn]struct{})
		h.conns[businessID] = set
	}
	set[conn] = struct{}{}
}

func (h *Hub) Unregister(businessID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if set, exists := h.conns[businessID]; exists {
		if _, ok := set[conn]; ok {
			_ = conn.Close()
			delete(set, conn)
		}
		if len(set) == 0 {
			delete(h.conns, businessID)
		}
	}
}

// Broadcast writes the event to every open dashboard of the business and
// drops connections that fail.
func (h *Hub) Broadcast(businessID int64, event Event) int {
	h.mutex.RLock()
	set := h.conns[businessID]
	targets := make([]*websocket.Conn, 0, len(set))
	for conn := range set {
		targets = append(targets, conn)
	}
	h.mutex.RUnlock()

	sent := 0
	for _, conn := range targets {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(businessID, conn)
			continue
		}
		sent++
	}
	return sent
}

func (h *Hub) OnlineCount(businessID int64) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.conns[businessID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for businessID, set := range h.conns {
		for conn := range set {
			_ = conn.Close()
		}
		delete(h.conns, businessID)
	}
}

// The hub doubles as the booking module's event sink.

func (h *Hub) BookingCreated(businessID int64, b *domain.Booking) {
	h.Broadcast(businessID, Event{Type: "booking.created", At: time.Now(), Booking: b})
}

func (h *Hub) BookingCancelled(businessID int64, b *domain.Booking) {
	h.Broadcast(businessID, Event{Type: "booking.cancelled", At: time.Now(), Booking: b})
}

func (h *Hub) BookingStatusChanged(businessID int64, b *domain.Booking) {
	h.Broadcast(businessID, Event{Type: "booking.status_changed", At: time.Now(), Booking: b})
}
