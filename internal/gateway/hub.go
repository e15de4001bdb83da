package gateway

import (
	"sync"

	"github.com/rish1507/RangiLalls-backend/utils"
)

// Hub routes broadcast events to per-auction channels. It implements the
// Broadcaster interfaces of the bidding service and the extension controller.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]struct{})}
}

func (h *Hub) join(auctionID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[auctionID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[auctionID] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) leave(auctionID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[auctionID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, auctionID)
		}
	}
}

// Subscribers returns the number of connections in an auction's channel
func (h *Hub) Subscribers(auctionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[auctionID])
}

// Broadcast delivers an event to every connection subscribed to the auction.
// Slow clients have the frame dropped rather than blocking the pipeline; they
// recover full state on their next join.
func (h *Hub) Broadcast(auctionID, event string, payload any) {
	frame, err := encodeEvent(event, payload)
	if err != nil {
		utils.Error("broadcast encode failed", map[string]any{
			"auction_id": auctionID,
			"event":      event,
			"error":      err.Error(),
		})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[auctionID] {
		select {
		case c.send <- frame:
		default:
			utils.Warn("dropping frame for slow client", map[string]any{
				"auction_id": auctionID,
				"event":      event,
				"user_id":    c.user.UserID,
			})
		}
	}
}
