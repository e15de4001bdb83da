package helpers

// Request/Response DTOs
type SaveAutoBidRequest struct {
	Enabled   bool  `json:"enabled"`
	MaxAmount int64 `json:"max_amount" binding:"required_if=Enabled true,gte=0"`
	Increment int64 `json:"increment" binding:"gte=0"`
}

type AutoBidResponse struct {
	AuctionID    string `json:"auction_id"`
	Enabled      bool   `json:"enabled"`
	MaxAmount    int64  `json:"max_amount"`
	Increment    int64  `json:"increment"`
	MinManualBid int64  `json:"min_manual_bid,omitempty"`
}

type BidResponse struct {
	BidID      string `json:"bid_id"`
	AuctionID  string `json:"auction_id"`
	UserID     string `json:"user_id"`
	BidderName string `json:"bidder_name"`
	Amount     int64  `json:"amount"`
	Timestamp  string `json:"timestamp"`
}

type MinBidResponse struct {
	AuctionID    string `json:"auction_id"`
	MinManualBid int64  `json:"min_manual_bid"`
}
