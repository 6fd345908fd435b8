package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	BookKeyPrefix = "book:%d"
)

const (
	UserTTL = 5 * time.Minute
	BookTTL = 30 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func BookKey(bookID uint) string {
	return fmt.Sprintf(BookKeyPrefix, bookID)
}

// GetJSON reads a cached value into dest. Returns false on miss, on a nil
// client, or when the cached payload cannot be decoded.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if client == nil {
		return false
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON stores a value under key with the given TTL. Best-effort.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	client.Set(ctx, key, raw, ttl)
}

// Invalidate removes a key. Best-effort.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateBook(ctx context.Context, bookID uint) {
	Invalidate(ctx, BookKey(bookID))
}
