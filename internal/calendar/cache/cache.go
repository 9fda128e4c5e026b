package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"familybridge/internal/calendar"
)

const (
	keyPrefix = "event:"

	DefaultSize = 10000
	DefaultTTL  = time.Hour
)

// eventCache keeps JSON-encoded events under "event:<id>" with a fixed TTL.
type eventCache struct {
	entries *expirable.LRU[string, []byte]
}

// New creates an in-process event cache. Non-positive size or ttl fall back to the defaults.
func New(size int, ttl time.Duration) calendar.Cache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &eventCache{
		entries: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

// Key returns the cache key of an event.
func Key(id string) string {
	return keyPrefix + id
}

func (c *eventCache) Set(ctx context.Context, event calendar.Event) error {
	if event.ID == "" {
		return fmt.Errorf("cache: event id is required")
	}
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("cache: encode event %s: %w", event.ID, err)
	}
	c.entries.Add(Key(event.ID), b)
	return nil
}

func (c *eventCache) Get(ctx context.Context, id string) (calendar.Event, bool, error) {
	b, ok := c.entries.Get(Key(id))
	if !ok {
		return calendar.Event{}, false, nil
	}
	var ev calendar.Event
	if err := json.Unmarshal(b, &ev); err != nil {
		c.entries.Remove(Key(id))
		return calendar.Event{}, false, fmt.Errorf("cache: decode event %s: %w", id, err)
	}
	return ev, true, nil
}

func (c *eventCache) Delete(ctx context.Context, id string) error {
	c.entries.Remove(Key(id))
	return nil
}
