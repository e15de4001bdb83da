package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rish1507/RangiLalls-backend/internal/auctionerrors"
	model "github.com/rish1507/RangiLalls-backend/internal/models"
	"github.com/rish1507/RangiLalls-backend/utils"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64
)

// Client is one authenticated websocket connection
type Client struct {
	gw   *Gateway
	conn *websocket.Conn
	user model.User
	send chan []byte

	mu     sync.Mutex
	joined map[string]struct{}
}

func newClient(gw *Gateway, conn *websocket.Conn, user model.User) *Client {
	return &Client{
		gw:     gw,
		conn:   conn,
		user:   user,
		send:   make(chan []byte, sendBufferSize),
		joined: make(map[string]struct{}),
	}
}

// emit sends an event to this client only
func (c *Client) emit(event string, payload any) {
	frame, err := encodeEvent(event, payload)
	if err != nil {
		utils.Error("emit encode failed", map[string]any{"event": event, "error": err.Error()})
		return
	}
	select {
	case c.send <- frame:
	default:
		// slow client, frame dropped
	}
}

// readPump reads frames from the connection and dispatches them until the
// connection drops
func (c *Client) readPump() {
	defer c.disconnect()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.Warn("websocket read error", map[string]any{
					"user_id": c.user.UserID,
					"error":   err.Error(),
				})
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.emit(EventAuctionError, map[string]any{"message": "malformed message"})
			continue
		}
		c.dispatch(env)
	}
}

// writePump drains the send channel to the connection and keeps it alive
// with pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) dispatch(env Envelope) {
	switch env.Event {
	case EventJoinAuction:
		var p joinPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.AuctionID == "" {
			c.emit(EventAuctionError, map[string]any{"message": "invalid join request"})
			return
		}
		c.handleJoin(p.AuctionID)
	case EventPlaceBid:
		var p placeBidPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.AuctionID == "" {
			c.emit(EventBidError, map[string]any{"message": "invalid bid request"})
			return
		}
		c.handlePlaceBid(p.AuctionID, p.Amount)
	case EventAuctionTimer:
		var p timerPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.AuctionID == "" {
			return
		}
		// pure relay: the gateway does not own auction timing
		c.gw.hub.Broadcast(p.AuctionID, EventTimerUpdate, map[string]any{
			"auction_id": p.AuctionID,
			"time_left":  p.TimeLeft,
		})
	case EventLeaveAuction:
		var p joinPayload
		if err := json.Unmarshal(env.Data, &p); err != nil || p.AuctionID == "" {
			return
		}
		c.handleLeave(p.AuctionID)
	default:
		c.emit(EventAuctionError, map[string]any{"message": "unknown event"})
	}
}

func (c *Client) handleJoin(auctionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snapshot, err := c.gw.sessions.Join(ctx, auctionID, c.user.UserID)
	if err != nil {
		utils.Error("join auction failed", map[string]any{
			"auction_id": auctionID,
			"user_id":    c.user.UserID,
			"error":      err.Error(),
		})
		c.emit(EventAuctionError, map[string]any{"message": "Error joining auction"})
		return
	}

	c.mu.Lock()
	c.joined[auctionID] = struct{}{}
	c.mu.Unlock()
	c.gw.hub.join(auctionID, c)

	c.emit(EventAuctionStatus, snapshot)
	c.gw.hub.Broadcast(auctionID, EventParticipantUpdate, map[string]any{
		"count": snapshot.ParticipantCount,
	})

	utils.Info("user joined auction", map[string]any{
		"auction_id": auctionID,
		"user_id":    c.user.UserID,
	})
}

func (c *Client) handlePlaceBid(auctionID string, amount int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := c.gw.bidding.PlaceBid(ctx, auctionID, c.user, amount); err != nil {
		c.emit(EventBidError, map[string]any{"message": clientBidMessage(err)})
		return
	}
	// the accepted bid itself is broadcast by the bid pipeline
}

func (c *Client) handleLeave(auctionID string) {
	c.mu.Lock()
	_, wasJoined := c.joined[auctionID]
	delete(c.joined, auctionID)
	c.mu.Unlock()
	if !wasJoined {
		return
	}

	c.gw.hub.leave(auctionID, c)
	remaining, _ := c.gw.sessions.Leave(auctionID, c.user.UserID)
	c.gw.hub.Broadcast(auctionID, EventParticipantUpdate, map[string]any{
		"count": remaining,
	})
}

// disconnect leaves every joined auction, synchronously evicting sessions
// that become empty, then tears the connection down
func (c *Client) disconnect() {
	c.mu.Lock()
	joined := make([]string, 0, len(c.joined))
	for auctionID := range c.joined {
		joined = append(joined, auctionID)
	}
	c.joined = make(map[string]struct{})
	c.mu.Unlock()

	for _, auctionID := range joined {
		c.gw.hub.leave(auctionID, c)
		remaining, _ := c.gw.sessions.Leave(auctionID, c.user.UserID)
		c.gw.hub.Broadcast(auctionID, EventParticipantUpdate, map[string]any{
			"count": remaining,
		})
	}

	close(c.send)
	utils.Info("user disconnected", map[string]any{"user_id": c.user.UserID})
}

// clientBidMessage translates a bid pipeline error into the message surfaced
// to the submitting client. Validation failures carry the specific threshold
// so the client can retry with a corrected amount; infrastructure failures
// surface as a generic processing error.
func clientBidMessage(err error) string {
	switch {
	case errors.Is(err, auctionerrors.ErrNotRegistered):
		return "You are not registered for this auction"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return "Auction is not active"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return "Auction has ended"
	case errors.Is(err, auctionerrors.ErrBidTooLow),
		errors.Is(err, auctionerrors.ErrBelowAutoBidFloor),
		errors.Is(err, auctionerrors.ErrInvalidBid):
		return validationDetail(err)
	default:
		return "Error processing bid"
	}
}

// validationDetail extracts the human-readable detail from a wrapped
// validation error ("service: <sentinel> - <detail>")
func validationDetail(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, " - "); i >= 0 {
		detail := msg[i+3:]
		if len(detail) > 0 {
			return strings.ToUpper(detail[:1]) + detail[1:]
		}
	}
	return "Invalid bid"
}
