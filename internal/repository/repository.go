package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rish1507/RangiLalls-backend/internal/auctionerrors"
	model "github.com/rish1507/RangiLalls-backend/internal/models"
)

// BidLedger is the durable, append-only record of accepted bids
type BidLedger interface {
	AppendBid(ctx context.Context, bid model.Bid) error
	HighestBid(ctx context.Context, auctionID string) (model.Bid, error)
	RecentBids(ctx context.Context, auctionID string, limit int) ([]model.Bid, error)
	BidsByUser(ctx context.Context, userID string) ([]model.Bid, error)
}

// AutoBidStore holds per (user, auction) auto-bid settings
type AutoBidStore interface {
	EnabledSettings(ctx context.Context, auctionID string) ([]model.AutoBidSetting, error)
	SettingFor(ctx context.Context, userID, auctionID string) (model.AutoBidSetting, error)
	SaveSetting(ctx context.Context, setting model.AutoBidSetting) (model.AutoBidSetting, error)
}

// RegistrationStore answers whether a user may bid in an auction
type RegistrationStore interface {
	HasApprovedRegistration(ctx context.Context, auctionID, userID string) (bool, error)
}

// AuctionStore exposes auction metadata plus the end-time extension fields,
// the only auction fields the bidding core is allowed to write
type AuctionStore interface {
	AuctionInfo(ctx context.Context, auctionID string) (model.AuctionInfo, error)
	UpdateEndTime(ctx context.Context, auctionID string, newEndTime time.Time, record model.ExtensionRecord) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of all store
// interfaces, used by tests and local development
type MemoryRepo struct {
	mu            sync.RWMutex
	bids          map[string][]model.Bid          // key: auctionID -> bids in append order
	autoBids      map[string]model.AutoBidSetting // key: userID + "/" + auctionID
	registrations map[string]model.RegistrationStatus
	auctions      map[string]model.AuctionInfo
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bids:          make(map[string][]model.Bid),
		autoBids:      make(map[string]model.AutoBidSetting),
		registrations: make(map[string]model.RegistrationStatus),
		auctions:      make(map[string]model.AuctionInfo),
	}
}

func pairKey(userID, auctionID string) string {
	return userID + "/" + auctionID
}

// AppendBid appends an accepted bid to the auction's history
func (r *MemoryRepo) AppendBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bid.AuctionID == "" || bid.UserID == "" {
		return fmt.Errorf("append bid: %w - missing auction or user ID", auctionerrors.ErrInvalidBid)
	}
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)
	return nil
}

// HighestBid returns the bid with the largest amount for an auction
func (r *MemoryRepo) HighestBid(_ context.Context, auctionID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := r.bids[auctionID]
	if len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("highest bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > highest.Amount {
			highest = b
		}
	}
	return highest, nil
}

// RecentBids returns up to limit bids for an auction, most recent first
func (r *MemoryRepo) RecentBids(_ context.Context, auctionID string, limit int) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := append([]model.Bid(nil), r.bids[auctionID]...)
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Timestamp.After(bids[j].Timestamp)
	})
	if limit > 0 && len(bids) > limit {
		bids = bids[:limit]
	}
	return bids, nil
}

// BidsByUser returns all bids placed by a user, most recent first
func (r *MemoryRepo) BidsByUser(_ context.Context, userID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bids []model.Bid
	for _, auctionBids := range r.bids {
		for _, b := range auctionBids {
			if b.UserID == userID {
				bids = append(bids, b)
			}
		}
	}
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Timestamp.After(bids[j].Timestamp)
	})
	return bids, nil
}

// EnabledSettings returns all enabled auto-bid settings for an auction,
// sorted by max amount descending
func (r *MemoryRepo) EnabledSettings(_ context.Context, auctionID string) ([]model.AutoBidSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var settings []model.AutoBidSetting
	for _, s := range r.autoBids {
		if s.AuctionID == auctionID && s.Enabled {
			settings = append(settings, s)
		}
	}
	sort.SliceStable(settings, func(i, j int) bool {
		return settings[i].MaxAmount > settings[j].MaxAmount
	})
	return settings, nil
}

// SettingFor returns the auto-bid setting of one user for one auction
func (r *MemoryRepo) SettingFor(_ context.Context, userID, auctionID string) (model.AutoBidSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.autoBids[pairKey(userID, auctionID)]
	if !ok {
		return model.AutoBidSetting{}, fmt.Errorf("auto-bid for user %s auction %s: %w", userID, auctionID, auctionerrors.ErrNoAutoBid)
	}
	return s, nil
}

// SaveSetting upserts an auto-bid setting. Activation is one-way: a setting
// that has Enabled=true can never be saved back to Enabled=false.
func (r *MemoryRepo) SaveSetting(_ context.Context, setting model.AutoBidSetting) (model.AutoBidSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(setting.UserID, setting.AuctionID)
	if existing, ok := r.autoBids[key]; ok && existing.Enabled && !setting.Enabled {
		return model.AutoBidSetting{}, fmt.Errorf("save auto-bid for user %s auction %s: %w", setting.UserID, setting.AuctionID, auctionerrors.ErrAutoBidLocked)
	}
	setting.UpdatedAt = time.Now().UTC()
	r.autoBids[key] = setting
	return setting, nil
}

// HasApprovedRegistration reports whether the user holds an approved
// registration for the auction
func (r *MemoryRepo) HasApprovedRegistration(_ context.Context, auctionID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status, ok := r.registrations[pairKey(userID, auctionID)]
	return ok && status == model.RegistrationApproved, nil
}

// AuctionInfo returns the metadata slice of one auction
func (r *MemoryRepo) AuctionInfo(_ context.Context, auctionID string) (model.AuctionInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.auctions[auctionID]
	if !ok {
		return model.AuctionInfo{}, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return info, nil
}

// UpdateEndTime persists a new auction end time and appends the extension
// record to the audit trail
func (r *MemoryRepo) UpdateEndTime(_ context.Context, auctionID string, newEndTime time.Time, record model.ExtensionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.auctions[auctionID]
	if !ok {
		return fmt.Errorf("update end time for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	info.EndTime = newEndTime
	info.ExtensionCount++
	info.ExtensionHistory = append(info.ExtensionHistory, record)
	r.auctions[auctionID] = info
	return nil
}

// AddAuction seeds an auction record. This method is intended for tests and
// local development only.
func (r *MemoryRepo) AddAuction(info model.AuctionInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[info.AuctionID] = info
}

// AddRegistration seeds a registration record. This method is intended for
// tests and local development only.
func (r *MemoryRepo) AddRegistration(reg model.AuctionRegistration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations[pairKey(reg.UserID, reg.AuctionID)] = reg.Status
}
