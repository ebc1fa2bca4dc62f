package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gatherly/events-api/internal/core/domain"
)

const (
	eventListKey = "events:list"
	eventListTTL = 30 * time.Second
)

// EventCache holds the public event list in Redis for a short TTL. The
// CRM stays the source of truth; mutations invalidate the key.
type EventCache struct {
	client *redis.Client
}

// NewEventCache creates an EventCache wrapping the given Redis client.
func NewEventCache(client *redis.Client) *EventCache {
	return &EventCache{client: client}
}

// GetEvents returns the cached list and whether the key was present.
func (c *EventCache) GetEvents(ctx context.Context) ([]domain.Event, bool, error) {
	raw, err := c.client.Get(ctx, eventListKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("event cache get: %w", err)
	}

	var events []domain.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, false, fmt.Errorf("event cache decode: %w", err)
	}
	return events, true, nil
}

// SetEvents stores the list under the fixed TTL.
func (c *EventCache) SetEvents(ctx context.Context, events []domain.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("event cache encode: %w", err)
	}
	return c.client.Set(ctx, eventListKey, raw, eventListTTL).Err()
}

// Invalidate drops the cached list after a mutation.
func (c *EventCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, eventListKey).Err()
}
