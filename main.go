package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	bidding "github.com/rish1507/RangiLalls-backend/internal/biddingService"
	"github.com/rish1507/RangiLalls-backend/internal/config"
	"github.com/rish1507/RangiLalls-backend/internal/extension"
	"github.com/rish1507/RangiLalls-backend/internal/gateway"
	"github.com/rish1507/RangiLalls-backend/internal/identity"
	"github.com/rish1507/RangiLalls-backend/internal/repository"
	"github.com/rish1507/RangiLalls-backend/internal/server"
	"github.com/rish1507/RangiLalls-backend/internal/session"
	"github.com/rish1507/RangiLalls-backend/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		utils.Fatal("failed to connect to mongodb", map[string]any{"error": err.Error()})
	}
	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		utils.Fatal("failed to ping mongodb", map[string]any{"error": err.Error()})
	}

	repo, err := repository.NewMongoRepo(ctx, mongoClient.Database(cfg.MongoDB))
	if err != nil {
		utils.Fatal("failed to initialize repository", map[string]any{"error": err.Error()})
	}

	redisClient, err := identity.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		utils.Fatal("failed to connect to redis", map[string]any{"error": err.Error()})
	}
	resolver := identity.NewRedisResolver(redisClient)

	sessions := session.NewManager(repo)
	hub := gateway.NewHub()
	extender := extension.NewController(repo, hub, extension.Config{
		Window:         cfg.ExtensionWindow,
		DefaultEndTime: cfg.DefaultEndTime,
		Location:       cfg.Timezone,
	})
	biddingSvc := bidding.NewBiddingService(repo, repo, repo, repo, sessions, extender, hub)
	gw := gateway.New(hub, resolver, sessions, biddingSvc, cfg.FrontendURL)

	router := server.SetupRouter(biddingSvc, gw, resolver)

	utils.Info("starting auction server", map[string]any{"addr": cfg.Addr()})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}
