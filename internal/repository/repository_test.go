package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rish1507/RangiLalls-backend/internal/auctionerrors"
	model "github.com/rish1507/RangiLalls-backend/internal/models"
)

// Helper to create a new Bid
func newBid(bidID, auctionID, userID string, amount int64, ts time.Time) model.Bid {
	return model.Bid{
		BidID:      bidID,
		AuctionID:  auctionID,
		UserID:     userID,
		BidderName: fmt.Sprintf("Bidder %s", userID),
		Amount:     amount,
		Timestamp:  ts,
	}
}

// Test AppendBid
func TestMemoryRepo_AppendBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	ctx := context.Background()

	tests := []struct {
		name      string
		bid       model.Bid
		wantError bool
	}{
		{name: "valid_bid", bid: newBid("bid1", "auction1", "user1", 1000, time.Now()), wantError: false},
		{name: "empty_auctionID", bid: newBid("bid2", "", "user1", 1000, time.Now()), wantError: true},
		{name: "empty_userID", bid: newBid("bid3", "auction1", "", 1000, time.Now()), wantError: true},
		{name: "second_bid_same_auction", bid: newBid("bid4", "auction1", "user2", 2000, time.Now()), wantError: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.AppendBid(ctx, tc.bid)
			if tc.wantError {
				require.Error(t, err)
				require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)
			} else {
				require.NoError(t, err)
				bids, err := repo.RecentBids(ctx, tc.bid.AuctionID, 0)
				require.NoError(t, err)
				require.Contains(t, bids, tc.bid)
			}
		})
	}
}

// Test HighestBid
func TestMemoryRepo_HighestBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.HighestBid(ctx, "auction1")
	require.ErrorIs(t, err, auctionerrors.ErrNoBids)

	require.NoError(t, repo.AppendBid(ctx, newBid("bid1", "auction1", "userA", 1000, now)))
	require.NoError(t, repo.AppendBid(ctx, newBid("bid2", "auction1", "userB", 3000, now.Add(time.Second))))
	require.NoError(t, repo.AppendBid(ctx, newBid("bid3", "auction1", "userC", 2000, now.Add(2*time.Second))))

	highest, err := repo.HighestBid(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, "bid2", highest.BidID)
	require.Equal(t, int64(3000), highest.Amount)

	// bids on another auction do not leak
	_, err = repo.HighestBid(ctx, "auction2")
	require.ErrorIs(t, err, auctionerrors.ErrNoBids)
}

// Test RecentBids ordering and limit
func TestMemoryRepo_RecentBids(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 10; i++ {
		bid := newBid(fmt.Sprintf("bid%d", i), "auction1", "user1", int64(1000+i), now.Add(time.Duration(i)*time.Second))
		require.NoError(t, repo.AppendBid(ctx, bid))
	}

	bids, err := repo.RecentBids(ctx, "auction1", 4)
	require.NoError(t, err)
	require.Len(t, bids, 4)
	require.Equal(t, "bid9", bids[0].BidID) // most recent first
	require.Equal(t, "bid6", bids[3].BidID)

	all, err := repo.RecentBids(ctx, "auction1", 0)
	require.NoError(t, err)
	require.Len(t, all, 10)

	empty, err := repo.RecentBids(ctx, "no-such-auction", 5)
	require.NoError(t, err)
	require.Empty(t, empty)
}

// Test BidsByUser
func TestMemoryRepo_BidsByUser(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.AppendBid(ctx, newBid("bid1", "auction1", "user1", 1000, now)))
	require.NoError(t, repo.AppendBid(ctx, newBid("bid2", "auction2", "user1", 2000, now.Add(time.Second))))
	require.NoError(t, repo.AppendBid(ctx, newBid("bid3", "auction1", "user2", 3000, now.Add(2*time.Second))))

	bids, err := repo.BidsByUser(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "bid2", bids[0].BidID)
	require.Equal(t, "bid1", bids[1].BidID)
}

// Test EnabledSettings sorting and filtering
func TestMemoryRepo_EnabledSettings(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	ctx := context.Background()

	save := func(userID string, enabled bool, maxAmount int64) {
		_, err := repo.SaveSetting(ctx, model.AutoBidSetting{
			UserID:    userID,
			AuctionID: "auction1",
			Enabled:   enabled,
			MaxAmount: maxAmount,
			Increment: 1000,
		})
		require.NoError(t, err)
	}

	save("user1", true, 4000)
	save("user2", true, 5000)
	save("user3", false, 9000) // disabled, must not appear
	save("user4", true, 3000)

	settings, err := repo.EnabledSettings(ctx, "auction1")
	require.NoError(t, err)
	require.Len(t, settings, 3)
	require.Equal(t, int64(5000), settings[0].MaxAmount)
	require.Equal(t, int64(4000), settings[1].MaxAmount)
	require.Equal(t, int64(3000), settings[2].MaxAmount)
}

// Test one-way activation of auto-bid settings
func TestMemoryRepo_SaveSetting_OneWayActivation(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	ctx := context.Background()

	setting := model.AutoBidSetting{UserID: "user1", AuctionID: "auction1", Enabled: true, MaxAmount: 5000, Increment: 1000}
	saved, err := repo.SaveSetting(ctx, setting)
	require.NoError(t, err)
	require.True(t, saved.Enabled)

	// raising the ceiling while enabled is fine
	setting.MaxAmount = 6000
	_, err = repo.SaveSetting(ctx, setting)
	require.NoError(t, err)

	// disabling an enabled setting is rejected
	setting.Enabled = false
	_, err = repo.SaveSetting(ctx, setting)
	require.ErrorIs(t, err, auctionerrors.ErrAutoBidLocked)

	// the stored setting is untouched
	stored, err := repo.SettingFor(ctx, "user1", "auction1")
	require.NoError(t, err)
	require.True(t, stored.Enabled)
	require.Equal(t, int64(6000), stored.MaxAmount)
}

// Test HasApprovedRegistration
func TestMemoryRepo_HasApprovedRegistration(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	ctx := context.Background()

	repo.AddRegistration(model.AuctionRegistration{UserID: "user1", AuctionID: "auction1", Status: model.RegistrationApproved})
	repo.AddRegistration(model.AuctionRegistration{UserID: "user2", AuctionID: "auction1", Status: model.RegistrationPending})
	repo.AddRegistration(model.AuctionRegistration{UserID: "user3", AuctionID: "auction1", Status: model.RegistrationRejected})

	tests := []struct {
		name   string
		userID string
		want   bool
	}{
		{name: "approved", userID: "user1", want: true},
		{name: "pending", userID: "user2", want: false},
		{name: "rejected", userID: "user3", want: false},
		{name: "unknown_user", userID: "user9", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := repo.HasApprovedRegistration(ctx, "auction1", tc.userID)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

// Test UpdateEndTime audit trail
func TestMemoryRepo_UpdateEndTime(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	ctx := context.Background()

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo.AddAuction(model.AuctionInfo{AuctionID: "auction1", ReservePrice: 100000, AuctionDate: date})

	err := repo.UpdateEndTime(ctx, "no-such-auction", date, model.ExtensionRecord{})
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

	prevEnd := date.Add(17 * time.Hour)
	newEnd := prevEnd.Add(time.Minute)
	record := model.ExtensionRecord{
		PreviousEndTime: prevEnd,
		NewEndTime:      newEnd,
		ExtendedAt:      prevEnd.Add(-5 * time.Minute),
		BidID:           "bid1",
		UserID:          "user1",
		Amount:          150000,
	}
	require.NoError(t, repo.UpdateEndTime(ctx, "auction1", newEnd, record))

	info, err := repo.AuctionInfo(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, newEnd, info.EndTime)
	require.Equal(t, 1, info.ExtensionCount)
	require.Len(t, info.ExtensionHistory, 1)
	require.Equal(t, record, info.ExtensionHistory[0])
}
