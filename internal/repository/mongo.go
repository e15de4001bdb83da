package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rish1507/RangiLalls-backend/internal/auctionerrors"
	model "github.com/rish1507/RangiLalls-backend/internal/models"
)

// Collection names match the original auction platform's document store
const (
	bidsCollection          = "auction_bids"
	autoBidsCollection      = "auto_bids"
	registrationsCollection = "auction_registrations"
	propertiesCollection    = "properties"
)

// MongoRepo implements all store interfaces on top of a MongoDB database
type MongoRepo struct {
	db *mongo.Database
}

// NewMongoRepo creates a MongoDB-backed repository and ensures the indexes
// the bid pipeline queries rely on
func NewMongoRepo(ctx context.Context, db *mongo.Database) (*MongoRepo, error) {
	r := &MongoRepo{db: db}
	if err := r.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("mongo repo: ensure indexes: %w", err)
	}
	return r, nil
}

func (r *MongoRepo) ensureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(bidsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "auctionId", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "auctionId", Value: 1}, {Key: "amount", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	if err != nil {
		return err
	}

	unique := options.Index().SetUnique(true)
	_, err = r.db.Collection(autoBidsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "auctionId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = r.db.Collection(registrationsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "auctionId", Value: 1}, {Key: "userId", Value: 1}, {Key: "status", Value: 1}},
	})
	return err
}

// AppendBid inserts an accepted bid into the ledger collection
func (r *MongoRepo) AppendBid(ctx context.Context, bid model.Bid) error {
	if _, err := r.db.Collection(bidsCollection).InsertOne(ctx, bid); err != nil {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, err)
	}
	return nil
}

// HighestBid returns the bid with the largest amount for an auction
func (r *MongoRepo) HighestBid(ctx context.Context, auctionID string) (model.Bid, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "amount", Value: -1}})

	var bid model.Bid
	err := r.db.Collection(bidsCollection).FindOne(ctx, bson.M{"auctionId": auctionID}, opts).Decode(&bid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Bid{}, fmt.Errorf("highest bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("highest bid for auction %s: %w", auctionID, err)
	}
	return bid, nil
}

// RecentBids returns up to limit bids for an auction, most recent first
func (r *MongoRepo) RecentBids(ctx context.Context, auctionID string, limit int) ([]model.Bid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := r.db.Collection(bidsCollection).Find(ctx, bson.M{"auctionId": auctionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent bids for auction %s: %w", auctionID, err)
	}
	defer cursor.Close(ctx)

	var bids []model.Bid
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, fmt.Errorf("recent bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// BidsByUser returns all bids placed by a user, most recent first
func (r *MongoRepo) BidsByUser(ctx context.Context, userID string) ([]model.Bid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.db.Collection(bidsCollection).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("bids for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bids []model.Bid
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, fmt.Errorf("bids for user %s: %w", userID, err)
	}
	return bids, nil
}

// EnabledSettings returns all enabled auto-bid settings for an auction,
// sorted by max amount descending
func (r *MongoRepo) EnabledSettings(ctx context.Context, auctionID string) ([]model.AutoBidSetting, error) {
	opts := options.Find().SetSort(bson.D{{Key: "maxAmount", Value: -1}})

	cursor, err := r.db.Collection(autoBidsCollection).Find(ctx, bson.M{"auctionId": auctionID, "enabled": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("enabled auto-bids for auction %s: %w", auctionID, err)
	}
	defer cursor.Close(ctx)

	var settings []model.AutoBidSetting
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, fmt.Errorf("enabled auto-bids for auction %s: %w", auctionID, err)
	}
	return settings, nil
}

// SettingFor returns the auto-bid setting of one user for one auction
func (r *MongoRepo) SettingFor(ctx context.Context, userID, auctionID string) (model.AutoBidSetting, error) {
	var setting model.AutoBidSetting
	err := r.db.Collection(autoBidsCollection).FindOne(ctx, bson.M{"userId": userID, "auctionId": auctionID}).Decode(&setting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.AutoBidSetting{}, fmt.Errorf("auto-bid for user %s auction %s: %w", userID, auctionID, auctionerrors.ErrNoAutoBid)
	}
	if err != nil {
		return model.AutoBidSetting{}, fmt.Errorf("auto-bid for user %s auction %s: %w", userID, auctionID, err)
	}
	return setting, nil
}

// SaveSetting upserts an auto-bid setting, enforcing one-way activation
func (r *MongoRepo) SaveSetting(ctx context.Context, setting model.AutoBidSetting) (model.AutoBidSetting, error) {
	existing, err := r.SettingFor(ctx, setting.UserID, setting.AuctionID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoAutoBid) {
		return model.AutoBidSetting{}, err
	}
	if err == nil && existing.Enabled && !setting.Enabled {
		return model.AutoBidSetting{}, fmt.Errorf("save auto-bid for user %s auction %s: %w", setting.UserID, setting.AuctionID, auctionerrors.ErrAutoBidLocked)
	}

	setting.UpdatedAt = time.Now().UTC()
	filter := bson.M{"userId": setting.UserID, "auctionId": setting.AuctionID}
	update := bson.M{"$set": bson.M{
		"enabled":   setting.Enabled,
		"maxAmount": setting.MaxAmount,
		"increment": setting.Increment,
		"updatedAt": setting.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.db.Collection(autoBidsCollection).UpdateOne(ctx, filter, update, opts); err != nil {
		return model.AutoBidSetting{}, fmt.Errorf("save auto-bid for user %s auction %s: %w", setting.UserID, setting.AuctionID, err)
	}
	return setting, nil
}

// HasApprovedRegistration reports whether an approved registration exists
func (r *MongoRepo) HasApprovedRegistration(ctx context.Context, auctionID, userID string) (bool, error) {
	filter := bson.M{"auctionId": auctionID, "userId": userID, "status": model.RegistrationApproved}
	count, err := r.db.Collection(registrationsCollection).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("registration check for auction %s user %s: %w", auctionID, userID, err)
	}
	return count > 0, nil
}

// AuctionInfo returns the metadata slice of one auction
func (r *MongoRepo) AuctionInfo(ctx context.Context, auctionID string) (model.AuctionInfo, error) {
	var info model.AuctionInfo
	err := r.db.Collection(propertiesCollection).FindOne(ctx, bson.M{"auctionId": auctionID}).Decode(&info)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.AuctionInfo{}, fmt.Errorf("auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.AuctionInfo{}, fmt.Errorf("auction %s: %w", auctionID, err)
	}
	return info, nil
}

// UpdateEndTime persists a new end time, bumps the extension counter and
// appends to the extension audit trail in a single document update
func (r *MongoRepo) UpdateEndTime(ctx context.Context, auctionID string, newEndTime time.Time, record model.ExtensionRecord) error {
	update := bson.M{
		"$set":  bson.M{"auctionEndTime": newEndTime},
		"$inc":  bson.M{"extensionCount": 1},
		"$push": bson.M{"extensionHistory": record},
	}

	result, err := r.db.Collection(propertiesCollection).UpdateOne(ctx, bson.M{"auctionId": auctionID}, update)
	if err != nil {
		return fmt.Errorf("update end time for auction %s: %w", auctionID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("update end time for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}
