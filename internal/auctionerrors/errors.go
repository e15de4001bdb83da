package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrNoAutoBid       = errors.New("no auto-bid settings found")
)

// Bid pipeline errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrNotRegistered     = errors.New("not registered for this auction")
	ErrAuctionNotActive  = errors.New("auction is not active")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrBelowAutoBidFloor = errors.New("bid below auto-bid floor")
)

// Settings and connection errors
var (
	ErrAutoBidLocked   = errors.New("auto-bidding cannot be disabled once enabled")
	ErrInvalidToken    = errors.New("invalid or expired session token")
	ErrInvalidSettings = errors.New("invalid auto-bid settings")
)
