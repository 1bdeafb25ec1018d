package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrCounterMiss is returned when no cached count exists for a tenant.
var ErrCounterMiss = errors.New("unread counter: cache miss")

// UnreadCounter caches per-tenant unread notification counts in Redis so the
// badge endpoint does not hit the database on every poll. The database remains
// the source of truth; callers fall back to a COUNT query on miss and re-seed.
type UnreadCounter struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewUnreadCounter dials Redis and returns a counter cache.
func NewUnreadCounter(cfg RedisConfig, ttl time.Duration) (*UnreadCounter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewUnreadCounterWithClient(client, "", ttl), nil
}

// NewUnreadCounterWithClient creates a counter backed by an existing client.
// Useful for testing or when sharing a client across components.
func NewUnreadCounterWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *UnreadCounter {
	if keyPrefix == "" {
		keyPrefix = "notification:unread:"
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &UnreadCounter{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (c *UnreadCounter) key(tenantID uuid.UUID) string {
	return c.keyPrefix + tenantID.String()
}

// Get returns the cached unread count, or ErrCounterMiss when absent.
func (c *UnreadCounter) Get(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	count, err := c.client.Get(ctx, c.key(tenantID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCounterMiss
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read unread counter: %w", err)
	}
	return count, nil
}

// Seed stores an authoritative count with the configured TTL.
func (c *UnreadCounter) Seed(ctx context.Context, tenantID uuid.UUID, count int64) error {
	if err := c.client.Set(ctx, c.key(tenantID), count, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to seed unread counter: %w", err)
	}
	return nil
}

// Incr bumps the cached count after a new notification is written. The bump
// is skipped when no cached value exists; the next Get will miss and re-seed
// from the database instead of creating a counter with an unknown base.
func (c *UnreadCounter) Incr(ctx context.Context, tenantID uuid.UUID) error {
	key := c.key(tenantID)

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check unread counter: %w", err)
	}
	if exists == 0 {
		return nil
	}

	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to increment unread counter: %w", err)
	}
	return nil
}

// Invalidate drops the cached count after reads are marked.
func (c *UnreadCounter) Invalidate(ctx context.Context, tenantID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(tenantID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate unread counter: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (c *UnreadCounter) Close() error {
	return c.client.Close()
}
