package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
	"github.com/redis/go-redis/v9"
)

const walletKeyPrefix = "wallet:"

// RedisWalletCache keeps wallet snapshots in Redis to spare the store on
// balance reads. Cache failures are logged and treated as misses so the
// ledger never depends on Redis being up.
type RedisWalletCache struct {
	client *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

// compile-time check against the domain port
var _ persistence.WalletCache = (*RedisWalletCache)(nil)

// NewRedisWalletCache creates a wallet cache backed by Redis
func NewRedisWalletCache(client *redis.Client, ttl time.Duration, logger coreport.Logger) *RedisWalletCache {
	return &RedisWalletCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached wallet for the user, if present
func (c *RedisWalletCache) Get(ctx context.Context, userID string) (*entity.Wallet, bool) {
	val, err := c.client.Get(ctx, walletKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("Wallet cache read failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, false
	}

	var wallet entity.Wallet
	if err := json.Unmarshal([]byte(val), &wallet); err != nil {
		c.logger.Warn("Wallet cache entry corrupt, dropping", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		_ = c.client.Del(ctx, walletKeyPrefix+userID).Err()
		return nil, false
	}
	return &wallet, true
}

// Set stores a wallet snapshot with the configured TTL
func (c *RedisWalletCache) Set(ctx context.Context, wallet *entity.Wallet) {
	if wallet == nil {
		return
	}
	b, err := json.Marshal(wallet)
	if err != nil {
		c.logger.Warn("Wallet cache marshal failed", map[string]any{
			"user_id": wallet.UserID,
			"error":   err.Error(),
		})
		return
	}
	if err := c.client.Set(ctx, walletKeyPrefix+wallet.UserID, b, c.ttl).Err(); err != nil {
		c.logger.Warn("Wallet cache write failed", map[string]any{
			"user_id": wallet.UserID,
			"error":   err.Error(),
		})
	}
}

// Invalidate drops cached wallets after a balance mutation
func (c *RedisWalletCache) Invalidate(ctx context.Context, userIDs ...string) {
	if len(userIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, walletKeyPrefix+id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Wallet cache invalidation failed", map[string]any{
			"user_ids": userIDs,
			"error":    err.Error(),
		})
	}
}

// NoopWalletCache is used when Redis is disabled; every read is a miss
type NoopWalletCache struct{}

// Get always misses
func (NoopWalletCache) Get(ctx context.Context, userID string) (*entity.Wallet, bool) {
	return nil, false
}

// Set does nothing
func (NoopWalletCache) Set(ctx context.Context, wallet *entity.Wallet) {}

// Invalidate does nothing
func (NoopWalletCache) Invalidate(ctx context.Context, userIDs ...string) {}
