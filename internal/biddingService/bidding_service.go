package bidding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rish1507/RangiLalls-backend/internal/auctionerrors"
	"github.com/rish1507/RangiLalls-backend/internal/extension"
	model "github.com/rish1507/RangiLalls-backend/internal/models"
	"github.com/rish1507/RangiLalls-backend/internal/repository"
	"github.com/rish1507/RangiLalls-backend/internal/session"
	"github.com/rish1507/RangiLalls-backend/utils"
)

// BidHistoryLimit caps the bid history returned to clients
const BidHistoryLimit = 50

// Broadcaster delivers an event to every subscriber of an auction's channel
type Broadcaster interface {
	Broadcast(auctionID, event string, payload any)
}

// BiddingService runs the live bid pipeline: validation, ledger append,
// session mutation, broadcast and extension evaluation, serialized per
// auction
type BiddingService struct {
	ledger        repository.BidLedger
	autoBids      repository.AutoBidStore
	registrations repository.RegistrationStore
	auctions      repository.AuctionStore
	sessions      *session.Manager
	extender      *extension.Controller
	broadcaster   Broadcaster
	locks         sync.Map // auctionID -> *sync.Mutex
	now           func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(
	ledger repository.BidLedger,
	autoBids repository.AutoBidStore,
	registrations repository.RegistrationStore,
	auctions repository.AuctionStore,
	sessions *session.Manager,
	extender *extension.Controller,
	broadcaster Broadcaster,
) *BiddingService {
	return &BiddingService{
		ledger:        ledger,
		autoBids:      autoBids,
		registrations: registrations,
		auctions:      auctions,
		sessions:      sessions,
		extender:      extender,
		broadcaster:   broadcaster,
		now:           time.Now,
	}
}

// auctionLock returns the mutex serializing bid processing for one auction.
// Bids on different auctions interleave freely; two bids on the same auction
// must never both pass validation against the same stale current bid.
func (s *BiddingService) auctionLock(auctionID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(auctionID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// PlaceBid validates and records a bid, updates the auction's session state,
// broadcasts the update and evaluates the anti-snipe extension. The whole
// pipeline holds the auction's lock, so the validate-then-write sequence is
// atomic relative to other bids on the same auction.
func (s *BiddingService) PlaceBid(ctx context.Context, auctionID string, user model.User, amount int64) (model.Bid, error) {
	lock := s.auctionLock(auctionID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.validateBid(ctx, auctionID, user.UserID, amount); err != nil {
		return model.Bid{}, err
	}

	bid := model.Bid{
		BidID:      utils.GenerateID(),
		AuctionID:  auctionID,
		UserID:     user.UserID,
		BidderName: user.DisplayName(),
		Amount:     amount,
		Timestamp:  s.now().UTC(),
	}

	// Durability precedes notification: nothing is mutated or broadcast
	// unless the ledger append succeeds.
	if err := s.ledger.AppendBid(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, user.UserID, err)
	}
	s.sessions.RecordBid(auctionID, bid)

	if s.broadcaster != nil {
		bidder := bid.Bidder()
		s.broadcaster.Broadcast(auctionID, "bid-update", map[string]any{
			"current_bid":    bid.Amount,
			"current_bidder": bidder,
			"timestamp":      bid.Timestamp.Format(time.RFC3339),
		})
	}

	// A failed extension leaves the bid valid; the inconsistency is logged,
	// not retried.
	if _, _, err := s.extender.Evaluate(ctx, bid); err != nil {
		utils.Error("extension evaluation failed", map[string]any{
			"auction_id": auctionID,
			"bid_id":     bid.BidID,
			"error":      err.Error(),
		})
	}

	return bid, nil
}

// validateBid applies the acceptance rules in order, short-circuiting on the
// first failure. Cheap checks run before the auto-bid floor lookup, which
// costs an extra query.
func (s *BiddingService) validateBid(ctx context.Context, auctionID, userID string, amount int64) error {
	if auctionID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing auction or user ID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	approved, err := s.registrations.HasApprovedRegistration(ctx, auctionID, userID)
	if err != nil {
		return fmt.Errorf("service: failed to check registration: %w", err)
	}
	if !approved {
		return fmt.Errorf("service: user %s auction %s: %w", userID, auctionID, auctionerrors.ErrNotRegistered)
	}

	currentBid, active := s.sessions.CurrentBid(auctionID)
	if !active {
		return fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrAuctionNotActive)
	}

	info, err := s.auctions.AuctionInfo(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if !s.now().Before(s.extender.EffectiveEndTime(info)) {
		return fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrAuctionEnded)
	}

	if amount <= currentBid {
		return fmt.Errorf("service: %w - bid must be higher than current bid of ₹%d", auctionerrors.ErrBidTooLow, currentBid)
	}

	settings, err := s.autoBids.EnabledSettings(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("service: failed to check auto-bids: %w", err)
	}
	// With two or more auto-bids active, the top one will counter-raise up
	// to its ceiling, so the competitive floor for a manual bidder is the
	// runner-up's ceiling.
	if len(settings) >= 2 {
		if floor := settings[1].MaxAmount; amount <= floor {
			return fmt.Errorf("service: %w - minimum bid is ₹%d", auctionerrors.ErrBelowAutoBidFloor, floor+1)
		}
	}

	return nil
}

// MinManualBid returns the minimum amount a manual bid must reach to clear
// the auto-bid floor: one above the second-highest enabled ceiling, or 0 when
// fewer than two auto-bids are enabled
func (s *BiddingService) MinManualBid(ctx context.Context, auctionID string) (int64, error) {
	settings, err := s.autoBids.EnabledSettings(ctx, auctionID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get auto-bids for auction %s: %w", auctionID, err)
	}
	if len(settings) < 2 {
		return 0, nil
	}
	return settings[1].MaxAmount + 1, nil
}

// BidHistory returns an auction's most recent bids, newest first
func (s *BiddingService) BidHistory(ctx context.Context, auctionID string) ([]model.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	bids, err := s.ledger.RecentBids(ctx, auctionID, BidHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bid history for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// UserBids returns all bids placed by one user, newest first
func (s *BiddingService) UserBids(ctx context.Context, userID string) ([]model.Bid, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	bids, err := s.ledger.BidsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", userID, err)
	}
	return bids, nil
}

// AutoBidSettings returns a user's auto-bid settings for an auction, or the
// defaults when none have been saved
func (s *BiddingService) AutoBidSettings(ctx context.Context, userID, auctionID string) (model.AutoBidSetting, error) {
	setting, err := s.autoBids.SettingFor(ctx, userID, auctionID)
	if errors.Is(err, auctionerrors.ErrNoAutoBid) {
		return model.AutoBidSetting{
			UserID:    userID,
			AuctionID: auctionID,
			Enabled:   false,
			MaxAmount: 0,
			Increment: 1000,
		}, nil
	}
	if err != nil {
		return model.AutoBidSetting{}, fmt.Errorf("service: failed to get auto-bid settings: %w", err)
	}
	return setting, nil
}

// SaveAutoBidSettings persists a user's auto-bid settings and, since a new
// ceiling moves the manual-bid floor, broadcasts the recomputed floor to the
// auction's channel. Activation is one-way; disabling an enabled setting is
// rejected by the store.
func (s *BiddingService) SaveAutoBidSettings(ctx context.Context, setting model.AutoBidSetting) (model.AutoBidSetting, int64, error) {
	if setting.UserID == "" || setting.AuctionID == "" {
		return model.AutoBidSetting{}, 0, fmt.Errorf("service: %w - missing user or auction ID", auctionerrors.ErrInvalidSettings)
	}
	if setting.Enabled && setting.MaxAmount <= 0 {
		return model.AutoBidSetting{}, 0, fmt.Errorf("service: %w - max amount must be positive", auctionerrors.ErrInvalidSettings)
	}
	if setting.Increment <= 0 {
		setting.Increment = 1000
	}

	saved, err := s.autoBids.SaveSetting(ctx, setting)
	if err != nil {
		return model.AutoBidSetting{}, 0, fmt.Errorf("service: failed to save auto-bid settings: %w", err)
	}

	floor, err := s.MinManualBid(ctx, setting.AuctionID)
	if err != nil {
		return saved, 0, err
	}
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(setting.AuctionID, "min-bid-update", map[string]any{
			"auction_id":     setting.AuctionID,
			"min_manual_bid": floor,
		})
	}
	return saved, floor, nil
}
