package gateway

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rish1507/RangiLalls-backend/internal/auctionerrors"
)

// Tests translation of bid pipeline errors into client-facing messages
func TestClientBidMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "not_registered",
			err:      fmt.Errorf("service: user u1 auction a1: %w", auctionerrors.ErrNotRegistered),
			expected: "You are not registered for this auction",
		},
		{
			name:     "not_active",
			err:      fmt.Errorf("service: auction a1: %w", auctionerrors.ErrAuctionNotActive),
			expected: "Auction is not active",
		},
		{
			name:     "ended",
			err:      fmt.Errorf("service: auction a1: %w", auctionerrors.ErrAuctionEnded),
			expected: "Auction has ended",
		},
		{
			name:     "too_low_carries_current_bid",
			err:      fmt.Errorf("service: %w - bid must be higher than current bid of ₹2000", auctionerrors.ErrBidTooLow),
			expected: "Bid must be higher than current bid of ₹2000",
		},
		{
			name:     "below_floor_carries_minimum",
			err:      fmt.Errorf("service: %w - minimum bid is ₹4001", auctionerrors.ErrBelowAutoBidFloor),
			expected: "Minimum bid is ₹4001",
		},
		{
			name:     "invalid_bid",
			err:      fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid),
			expected: "Non-positive bid amount",
		},
		{
			name:     "infrastructure_error_stays_generic",
			err:      fmt.Errorf("service: failed to record bid: %w", errors.New("write failed")),
			expected: "Error processing bid",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, clientBidMessage(tc.err))
		})
	}
}

func TestValidationDetail_NoSeparator(t *testing.T) {
	require.Equal(t, "Invalid bid", validationDetail(errors.New("bare error")))
}
