package models

import (
	"strings"
	"time"
)

// User represents an authenticated bidder identity resolved at connection time
type User struct {
	UserID    string `bson:"_id" json:"user_id"`
	FirstName string `bson:"firstName" json:"first_name"`
	LastName  string `bson:"lastName" json:"last_name"`
	Email     string `bson:"email" json:"email"`
}

// DisplayName returns the name shown to other auction participants
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// BidderRef is the identity snapshot embedded in bid updates and session state
type BidderRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Bid is an accepted bid. Immutable once appended to the ledger.
// Amount is in the smallest currency unit.
type Bid struct {
	BidID      string    `bson:"_id" json:"bid_id"`
	AuctionID  string    `bson:"auctionId" json:"auction_id"`
	UserID     string    `bson:"userId" json:"user_id"`
	BidderName string    `bson:"bidderName" json:"bidder_name"`
	Amount     int64     `bson:"amount" json:"amount"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// Bidder returns the identity snapshot for this bid
func (b Bid) Bidder() BidderRef {
	return BidderRef{ID: b.UserID, Name: b.BidderName}
}

// AutoBidSetting is a user's standing maximum-bid preference for one auction.
// Unique per (user, auction). Once Enabled turns true it stays true.
type AutoBidSetting struct {
	UserID    string    `bson:"userId" json:"user_id"`
	AuctionID string    `bson:"auctionId" json:"auction_id"`
	Enabled   bool      `bson:"enabled" json:"enabled"`
	MaxAmount int64     `bson:"maxAmount" json:"max_amount"`
	Increment int64     `bson:"increment" json:"increment"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// RegistrationStatus is the approval state of an auction registration
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// AuctionRegistration is the slice of the registration workflow the bidding
// core reads: only approved registrations authorize bidding.
type AuctionRegistration struct {
	UserID    string             `bson:"userId" json:"user_id"`
	AuctionID string             `bson:"auctionId" json:"auction_id"`
	Status    RegistrationStatus `bson:"status" json:"status"`
}

// ExtensionRecord is one entry of an auction's extension audit trail
type ExtensionRecord struct {
	PreviousEndTime time.Time `bson:"previousEndTime" json:"previous_end_time"`
	NewEndTime      time.Time `bson:"newEndTime" json:"new_end_time"`
	ExtendedAt      time.Time `bson:"extendedAt" json:"extended_at"`
	BidID           string    `bson:"bidId" json:"bid_id"`
	UserID          string    `bson:"userId" json:"user_id"`
	Amount          int64     `bson:"amount" json:"amount"`
}

// AuctionInfo is the auction metadata the bidding core reads. The core is
// granted write access only to the end-time extension fields.
type AuctionInfo struct {
	AuctionID        string            `bson:"auctionId" json:"auction_id"`
	ReservePrice     int64             `bson:"reservePrice" json:"reserve_price"`
	AuctionDate      time.Time         `bson:"auctionDate" json:"auction_date"`
	EndTime          time.Time         `bson:"auctionEndTime,omitempty" json:"auction_end_time"`
	ExtensionCount   int               `bson:"extensionCount" json:"extension_count"`
	ExtensionHistory []ExtensionRecord `bson:"extensionHistory,omitempty" json:"extension_history"`
}

// Snapshot is the initial state sync a client receives when joining an auction
type Snapshot struct {
	CurrentBid       int64      `json:"current_bid"`
	CurrentBidder    *BidderRef `json:"current_bidder"`
	ParticipantCount int        `json:"participant_count"`
	RecentBids       []Bid      `json:"recent_bids"`
}
