package integrationtests

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	model "github.com/rish1507/RangiLalls-backend/internal/models"
)

type wsEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func dialWS(t *testing.T, serverURL, token string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	return conn
}

func sendEvent(t *testing.T, conn *websocket.Conn, event string, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(wsEnvelope{Event: event, Data: data}))
}

// readEvent reads frames until one matching the wanted event arrives,
// skipping interleaved broadcasts
func readEvent(t *testing.T, conn *websocket.Conn, want string) map[string]any {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	require.NoError(t, conn.SetReadDeadline(deadline))

	for {
		var env wsEnvelope
		require.NoError(t, conn.ReadJSON(&env), "waiting for %q", want)
		if env.Event != want {
			continue
		}
		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		return data
	}
}

// Full live-bidding flow over a real websocket connection: join with state
// hydration, a rejected low bid, an accepted bid broadcast to the room.
func TestWebsocketBiddingFlow(t *testing.T) {
	userC := model.User{UserID: "userC", FirstName: "Chitra", LastName: "Rao", Email: "chitra@example.com"}

	env := authedEnv(t)
	env.Repo.AddRegistration(model.AuctionRegistration{UserID: userC.UserID, AuctionID: "auction1", Status: model.RegistrationApproved})
	env.Resolver.AddToken("token-c", userC)
	env.SeedBid(t, "auction1", userA, 1000)
	env.SeedBid(t, "auction1", userB, 2000)

	srv := httptest.NewServer(env.Router)
	defer srv.Close()

	// unresolvable token is turned away before the upgrade
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=bad-token"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.Equal(t, 401, resp.StatusCode)

	connB := dialWS(t, srv.URL, "token-b")
	defer connB.Close()
	sendEvent(t, connB, "join-auction", map[string]any{"auction_id": "auction1"})
	readEvent(t, connB, "auction-status")

	connC := dialWS(t, srv.URL, "token-c")
	defer connC.Close()
	sendEvent(t, connC, "join-auction", map[string]any{"auction_id": "auction1"})

	// join hydrates the session from the ledger
	status := readEvent(t, connC, "auction-status")
	require.Equal(t, float64(2000), status["current_bid"])
	bidder := status["current_bidder"].(map[string]any)
	require.Equal(t, "userB", bidder["id"])
	require.Equal(t, "Bina Patel", bidder["name"])
	require.Equal(t, float64(2), status["participant_count"])
	require.Len(t, status["recent_bids"].([]any), 2)

	// bid below the current bid is rejected with the threshold named
	sendEvent(t, connC, "place-bid", map[string]any{"auction_id": "auction1", "amount": 1500})
	bidErr := readEvent(t, connC, "bid-error")
	require.Contains(t, bidErr["message"], "2000")

	// a valid bid reaches every subscriber of the auction's channel
	sendEvent(t, connC, "place-bid", map[string]any{"auction_id": "auction1", "amount": 2500})
	for _, conn := range []*websocket.Conn{connB, connC} {
		update := readEvent(t, conn, "bid-update")
		require.Equal(t, float64(2500), update["current_bid"])
		bidder := update["current_bidder"].(map[string]any)
		require.Equal(t, "userC", bidder["id"])
		require.Equal(t, "Chitra Rao", bidder["name"])
	}

	// the accepted bid is durable, not just broadcast
	history, w := ExecuteRequestAndParse(t, env.Router, "GET", "/auctions/auction1/bids", "token-c", nil)
	require.Equal(t, 200, w.Code)
	bids := history["data"].([]any)
	require.Equal(t, float64(2500), bids[0].(map[string]any)["amount"])

	// leaving shrinks the participant count for those remaining
	sendEvent(t, connC, "leave-auction", map[string]any{"auction_id": "auction1"})
	update := readEvent(t, connB, "participant-update")
	require.Equal(t, float64(1), update["count"])
}

// A bidder who never registered for the auction is refused at bid time even
// though the connection itself is authenticated
func TestWebsocketUnregisteredBidder(t *testing.T) {
	userD := model.User{UserID: "userD", FirstName: "Dev", LastName: "Singh", Email: "dev@example.com"}

	env := authedEnv(t)
	env.Resolver.AddToken("token-d", userD)

	srv := httptest.NewServer(env.Router)
	defer srv.Close()

	conn := dialWS(t, srv.URL, "token-d")
	defer conn.Close()

	sendEvent(t, conn, "join-auction", map[string]any{"auction_id": "auction1"})
	readEvent(t, conn, "auction-status")

	sendEvent(t, conn, "place-bid", map[string]any{"auction_id": "auction1", "amount": 1000})
	bidErr := readEvent(t, conn, "bid-error")
	require.Equal(t, "You are not registered for this auction", bidErr["message"])
}
