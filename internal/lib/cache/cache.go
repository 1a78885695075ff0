// Package cache provides a Redis read-through cache for dictionary lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sergioortiz17/devtools-backend/internal/model"
)

const keyPrefix = "dictionary:entry:"

// DefinitionCache stores dictionary entries as JSON keyed by the
// normalized word, so lookups in any casing share one key.
type DefinitionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDefinitionCache(client *redis.Client, ttl time.Duration) *DefinitionCache {
	return &DefinitionCache{client: client, ttl: ttl}
}

// Key returns the Redis key for word.
func Key(word string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(word))
}

// Get returns the cached entry, or nil on a miss.
func (c *DefinitionCache) Get(ctx context.Context, word string) (*model.DictionaryEntry, error) {
	raw, err := c.client.Get(ctx, Key(word)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cached definition: %w", err)
	}

	var entry model.DictionaryEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode cached definition: %w", err)
	}
	return &entry, nil
}

// Set caches entry under its word for the configured TTL.
func (c *DefinitionCache) Set(ctx context.Context, entry *model.DictionaryEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode definition: %w", err)
	}
	if err := c.client.Set(ctx, Key(entry.Word), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write cached definition: %w", err)
	}
	return nil
}
