// Package identity resolves bearer credentials to user identities. Session
// tokens are written by the external auth subsystem; this package only reads
// them.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rish1507/RangiLalls-backend/internal/auctionerrors"
	model "github.com/rish1507/RangiLalls-backend/internal/models"
)

// Resolver turns a bearer token into a user identity or fails
type Resolver interface {
	Resolve(ctx context.Context, token string) (model.User, error)
}

// NewRedisClient connects to the session token store and verifies the
// connection with a ping
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("identity: failed to ping redis: %w", err)
	}
	return client, nil
}

// RedisResolver reads session entries from the shared token store
type RedisResolver struct {
	client *redis.Client
}

// NewRedisResolver creates a resolver over the given redis client
func NewRedisResolver(client *redis.Client) *RedisResolver {
	return &RedisResolver{client: client}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Resolve looks the token up in the session store and decodes the stored
// user identity
func (r *RedisResolver) Resolve(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, auctionerrors.ErrInvalidToken
	}

	val, err := r.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return model.User{}, auctionerrors.ErrInvalidToken
	}
	if err != nil {
		return model.User{}, fmt.Errorf("identity: failed to read session from redis: %w", err)
	}

	var user model.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return model.User{}, fmt.Errorf("identity: failed to unmarshal session: %w", err)
	}
	if user.UserID == "" {
		return model.User{}, auctionerrors.ErrInvalidToken
	}
	return user, nil
}

// MemoryResolver is an in-memory Resolver for tests and local development
type MemoryResolver struct {
	mu     sync.RWMutex
	tokens map[string]model.User
}

// NewMemoryResolver creates an empty in-memory resolver
func NewMemoryResolver() *MemoryResolver {
	return &MemoryResolver{tokens: make(map[string]model.User)}
}

// AddToken registers a token for a user. This method is intended for tests
// and local development only.
func (r *MemoryResolver) AddToken(token string, user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = user
}

// Resolve returns the user registered for the token
func (r *MemoryResolver) Resolve(_ context.Context, token string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.tokens[token]
	if !ok {
		return model.User{}, auctionerrors.ErrInvalidToken
	}
	return user, nil
}
