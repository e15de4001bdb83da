package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	bidding "github.com/rish1507/RangiLalls-backend/internal/biddingService"
	"github.com/rish1507/RangiLalls-backend/internal/extension"
	"github.com/rish1507/RangiLalls-backend/internal/gateway"
	"github.com/rish1507/RangiLalls-backend/internal/identity"
	model "github.com/rish1507/RangiLalls-backend/internal/models"
	"github.com/rish1507/RangiLalls-backend/internal/repository"
	"github.com/rish1507/RangiLalls-backend/internal/server"
	"github.com/rish1507/RangiLalls-backend/internal/session"
)

// TestEnv bundles the full in-memory pipeline behind the router
type TestEnv struct {
	Router   *gin.Engine
	Repo     *repository.MemoryRepo
	Resolver *identity.MemoryResolver
	Sessions *session.Manager
	Hub      *gateway.Hub
	Service  *bidding.BiddingService
}

// SetupTestEnv initializes the router over the in-memory repository and
// resolver for integration testing.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	resolver := identity.NewMemoryResolver()
	sessions := session.NewManager(repo)
	hub := gateway.NewHub()
	extender := extension.NewController(repo, hub, extension.Config{
		Window:         6 * time.Minute,
		DefaultEndTime: 17 * time.Hour,
		Location:       time.UTC,
	})
	service := bidding.NewBiddingService(repo, repo, repo, repo, sessions, extender, hub)
	gw := gateway.New(hub, resolver, sessions, service, "")

	return &TestEnv{
		Router:   server.SetupRouter(service, gw, resolver),
		Repo:     repo,
		Resolver: resolver,
		Sessions: sessions,
		Hub:      hub,
		Service:  service,
	}
}

// SeedAuction registers an open auction ending an hour from now and approves
// the given users for it
func (e *TestEnv) SeedAuction(auctionID string, users ...model.User) {
	e.Repo.AddAuction(model.AuctionInfo{
		AuctionID:   auctionID,
		AuctionDate: time.Now().UTC().Truncate(24 * time.Hour),
		EndTime:     time.Now().UTC().Add(time.Hour),
	})
	for _, user := range users {
		e.Repo.AddRegistration(model.AuctionRegistration{
			UserID:    user.UserID,
			AuctionID: auctionID,
			Status:    model.RegistrationApproved,
		})
	}
}

// SeedBid appends a bid directly to the ledger
func (e *TestEnv) SeedBid(t *testing.T, auctionID string, user model.User, amount int64) {
	t.Helper()
	err := e.Repo.AppendBid(context.Background(), model.Bid{
		BidID:      auctionID + "-" + user.UserID + "-seed",
		AuctionID:  auctionID,
		UserID:     user.UserID,
		BidderName: user.DisplayName(),
		Amount:     amount,
		Timestamp:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("failed to seed bid: %v", err)
	}
}

// ExecuteRequest executes an HTTP request with the given bearer token and
// returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, token, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
