// Package session holds the transient in-memory bidding state of active
// auctions. State exists only while at least one client is watching the
// auction; it is hydrated from the bid ledger on first join and evicted when
// the last participant leaves.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rish1507/RangiLalls-backend/internal/auctionerrors"
	model "github.com/rish1507/RangiLalls-backend/internal/models"
	"github.com/rish1507/RangiLalls-backend/internal/repository"
)

// RecentBidWindow is the capacity of the per-auction recent-bid ring
const RecentBidWindow = 50

// Manager owns all active auction sessions, keyed by auction ID
type Manager struct {
	mu       sync.Mutex
	ledger   repository.BidLedger
	sessions map[string]*auctionState
}

type auctionState struct {
	mu            sync.RWMutex
	currentBid    int64
	currentBidder *model.BidderRef
	lastBidTime   time.Time
	participants  map[string]struct{}
	recentBids    []model.Bid // most recent first
}

// NewManager creates a session manager hydrating from the given ledger
func NewManager(ledger repository.BidLedger) *Manager {
	return &Manager{
		ledger:   ledger,
		sessions: make(map[string]*auctionState),
	}
}

// Activate materializes session state for an auction from the bid ledger.
// Activating an already-active auction is a no-op and does not re-query the
// ledger.
func (m *Manager) Activate(ctx context.Context, auctionID string) error {
	m.mu.Lock()
	if _, ok := m.sessions[auctionID]; ok {
		m.mu.Unlock()
		return nil
	}

	st := &auctionState{participants: make(map[string]struct{})}
	// Insert locked so concurrent joiners block until hydration finishes.
	st.mu.Lock()
	m.sessions[auctionID] = st
	m.mu.Unlock()

	if err := m.hydrate(ctx, auctionID, st); err != nil {
		st.mu.Unlock()
		m.mu.Lock()
		delete(m.sessions, auctionID)
		m.mu.Unlock()
		return fmt.Errorf("activate session for auction %s: %w", auctionID, err)
	}
	st.mu.Unlock()
	return nil
}

func (m *Manager) hydrate(ctx context.Context, auctionID string, st *auctionState) error {
	highest, err := m.ledger.HighestBid(ctx, auctionID)
	switch {
	case err == nil:
		bidder := highest.Bidder()
		st.currentBid = highest.Amount
		st.currentBidder = &bidder
		st.lastBidTime = highest.Timestamp
	case errors.Is(err, auctionerrors.ErrNoBids):
		// no bids yet: currentBid stays 0, currentBidder stays nil
	default:
		return err
	}

	recent, err := m.ledger.RecentBids(ctx, auctionID, RecentBidWindow)
	if err != nil {
		return err
	}
	st.recentBids = recent
	return nil
}

// Join adds a user to the auction's participant set, activating the session
// if needed, and returns the snapshot for the client's initial sync
func (m *Manager) Join(ctx context.Context, auctionID, userID string) (model.Snapshot, error) {
	if err := m.Activate(ctx, auctionID); err != nil {
		return model.Snapshot{}, err
	}

	st, ok := m.lookup(auctionID)
	if !ok {
		// evicted between activation and join by a concurrent leave; retry once
		if err := m.Activate(ctx, auctionID); err != nil {
			return model.Snapshot{}, err
		}
		if st, ok = m.lookup(auctionID); !ok {
			return model.Snapshot{}, fmt.Errorf("join auction %s: session vanished", auctionID)
		}
	}

	st.mu.Lock()
	st.participants[userID] = struct{}{}
	snap := st.snapshotLocked()
	st.mu.Unlock()
	return snap, nil
}

// Leave removes a user from the auction's participant set. When the set
// becomes empty the whole session entry is evicted. Returns the remaining
// participant count and whether eviction happened.
func (m *Manager) Leave(auctionID, userID string) (remaining int, evicted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.sessions[auctionID]
	if !ok {
		return 0, false
	}

	st.mu.Lock()
	delete(st.participants, userID)
	remaining = len(st.participants)
	st.mu.Unlock()

	if remaining == 0 {
		delete(m.sessions, auctionID)
		return 0, true
	}
	return remaining, false
}

// LeaveResult describes the outcome of removing a user from one auction
type LeaveResult struct {
	AuctionID string
	Remaining int
	Evicted   bool
}

// LeaveAll removes a user from every auction they participate in, evicting
// sessions that become empty. Used on client disconnect.
func (m *Manager) LeaveAll(userID string) []LeaveResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	var results []LeaveResult
	for auctionID, st := range m.sessions {
		st.mu.Lock()
		_, present := st.participants[userID]
		if present {
			delete(st.participants, userID)
		}
		remaining := len(st.participants)
		st.mu.Unlock()

		if !present {
			continue
		}
		evicted := remaining == 0
		if evicted {
			delete(m.sessions, auctionID)
		}
		results = append(results, LeaveResult{AuctionID: auctionID, Remaining: remaining, Evicted: evicted})
	}
	return results
}

// RecordBid applies an accepted bid to the auction's session state. Returns
// false if no session is active for the auction.
func (m *Manager) RecordBid(auctionID string, bid model.Bid) bool {
	st, ok := m.lookup(auctionID)
	if !ok {
		return false
	}

	bidder := bid.Bidder()
	st.mu.Lock()
	st.currentBid = bid.Amount
	st.currentBidder = &bidder
	st.lastBidTime = bid.Timestamp
	st.recentBids = append([]model.Bid{bid}, st.recentBids...)
	if len(st.recentBids) > RecentBidWindow {
		st.recentBids = st.recentBids[:RecentBidWindow]
	}
	st.mu.Unlock()
	return true
}

// CurrentBid returns the auction's current highest bid amount and whether a
// session is active
func (m *Manager) CurrentBid(auctionID string) (int64, bool) {
	st, ok := m.lookup(auctionID)
	if !ok {
		return 0, false
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.currentBid, true
}

// Active reports whether session state exists for the auction
func (m *Manager) Active(auctionID string) bool {
	_, ok := m.lookup(auctionID)
	return ok
}

// Snapshot returns the auction's current state for client sync
func (m *Manager) Snapshot(auctionID string) (model.Snapshot, bool) {
	st, ok := m.lookup(auctionID)
	if !ok {
		return model.Snapshot{}, false
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snapshotLocked(), true
}

func (m *Manager) lookup(auctionID string) (*auctionState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[auctionID]
	return st, ok
}

func (st *auctionState) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		CurrentBid:       st.currentBid,
		CurrentBidder:    st.currentBidder,
		ParticipantCount: len(st.participants),
		RecentBids:       append([]model.Bid(nil), st.recentBids...),
	}
}
