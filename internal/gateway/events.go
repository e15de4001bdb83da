package gateway

import (
	"encoding/json"
	"fmt"
)

// Events received from clients
const (
	EventJoinAuction  = "join-auction"
	EventPlaceBid     = "place-bid"
	EventAuctionTimer = "auction-timer"
	EventLeaveAuction = "leave-auction"
)

// Events emitted to clients
const (
	EventAuctionStatus     = "auction-status"
	EventBidUpdate         = "bid-update"
	EventParticipantUpdate = "participant-update"
	EventTimerUpdate       = "timer-update"
	EventAuctionExtended   = "auction-extended"
	EventMinBidUpdate      = "min-bid-update"
	EventBidError          = "bid-error"
	EventAuctionError      = "auction-error"
)

// Envelope is the JSON frame exchanged over the websocket
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func encodeEvent(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("gateway: marshal %s payload: %w", event, err)
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}

type joinPayload struct {
	AuctionID string `json:"auction_id"`
}

type placeBidPayload struct {
	AuctionID string `json:"auction_id"`
	Amount    int64  `json:"amount"`
}

type timerPayload struct {
	AuctionID string          `json:"auction_id"`
	TimeLeft  json.RawMessage `json:"time_left"`
}
