// Package extension implements anti-snipe protection: a bid accepted shortly
// before an auction's end time pushes the end time back, so a last-second bid
// can never win uncontested.
package extension

import (
	"context"
	"fmt"
	"time"

	model "github.com/rish1507/RangiLalls-backend/internal/models"
	"github.com/rish1507/RangiLalls-backend/internal/repository"
	"github.com/rish1507/RangiLalls-backend/utils"
)

// Broadcaster delivers an event to every subscriber of an auction's channel
type Broadcaster interface {
	Broadcast(auctionID, event string, payload any)
}

// Config carries the timing rules for auction extensions
type Config struct {
	// Window is the anti-snipe window: a bid accepted with less than this
	// much time remaining extends the auction.
	Window time.Duration
	// DefaultEndTime is the time of day, as an offset from midnight, an
	// auction ends on its scheduled date when no explicit end time is set.
	DefaultEndTime time.Duration
	// Location resolves end-of-day boundaries.
	Location *time.Location
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Controller evaluates every accepted bid against the anti-snipe window
type Controller struct {
	auctions    repository.AuctionStore
	broadcaster Broadcaster
	window      time.Duration
	defaultEnd  time.Duration
	loc         *time.Location
	now         func() time.Time
}

// NewController creates an extension controller
func NewController(auctions repository.AuctionStore, broadcaster Broadcaster, cfg Config) *Controller {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Controller{
		auctions:    auctions,
		broadcaster: broadcaster,
		window:      cfg.Window,
		defaultEnd:  cfg.DefaultEndTime,
		loc:         cfg.Location,
		now:         cfg.Now,
	}
}

// EffectiveEndTime returns the auction's end time, falling back to the
// configured default time of day on the scheduled auction date when unset
func (c *Controller) EffectiveEndTime(info model.AuctionInfo) time.Time {
	if !info.EndTime.IsZero() {
		return info.EndTime
	}
	d := info.AuctionDate.In(c.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, c.loc).Add(c.defaultEnd)
}

// Evaluate runs after every accepted bid. If the auction's remaining time
// falls inside the anti-snipe window the end time is advanced, persisted with
// an audit record, and broadcast to the auction's channel. Extensions never
// push the end past 23:59:59 of the scheduled auction date.
func (c *Controller) Evaluate(ctx context.Context, bid model.Bid) (bool, time.Time, error) {
	info, err := c.auctions.AuctionInfo(ctx, bid.AuctionID)
	if err != nil {
		return false, time.Time{}, fmt.Errorf("extension: load auction %s: %w", bid.AuctionID, err)
	}

	now := c.now().In(c.loc)
	endTime := c.EffectiveEndTime(info)
	remaining := endTime.Sub(now)

	// Auction already closed, or the bid arrived early enough that no
	// extension is warranted.
	if remaining <= 0 || remaining >= c.window {
		return false, endTime, nil
	}

	newEnd := now.Add(c.window)
	if endTime.After(newEnd) {
		newEnd = endTime
	}

	d := info.AuctionDate.In(c.loc)
	dayCap := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, c.loc)
	if newEnd.After(dayCap) {
		newEnd = dayCap
	}
	if !newEnd.After(endTime) {
		// already pinned at the day boundary, nothing left to extend
		return false, endTime, nil
	}

	record := model.ExtensionRecord{
		PreviousEndTime: endTime,
		NewEndTime:      newEnd,
		ExtendedAt:      now,
		BidID:           bid.BidID,
		UserID:          bid.UserID,
		Amount:          bid.Amount,
	}
	if err := c.auctions.UpdateEndTime(ctx, bid.AuctionID, newEnd, record); err != nil {
		return false, endTime, fmt.Errorf("extension: persist new end time for auction %s: %w", bid.AuctionID, err)
	}

	utils.Info("auction extended", map[string]any{
		"auction_id":   bid.AuctionID,
		"previous_end": endTime.Format(time.RFC3339),
		"new_end":      newEnd.Format(time.RFC3339),
		"bid_id":       bid.BidID,
	})

	if c.broadcaster != nil {
		c.broadcaster.Broadcast(bid.AuctionID, "auction-extended", map[string]any{
			"auction_id":      bid.AuctionID,
			"new_end_time":    newEnd.Format(time.RFC3339),
			"extension_count": info.ExtensionCount + 1,
		})
	}
	return true, newEnd, nil
}
