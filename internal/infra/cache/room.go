// Package cache keeps read-through copies of room views in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"room-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix   = "rooms:"
	keyListAll  = keyPrefix + "list:all"
	keyListOpen = keyPrefix + "list:open"
)

func itemKey(roomNumber int) string {
	return keyPrefix + "item:" + strconv.Itoa(roomNumber)
}

// RoomCache decorates a RoomReadStore. Redis failures are logged and the
// call falls through to the store; a nil client disables caching.
type RoomCache struct {
	next queries.RoomReadStore
	rdb  *redis.Client
	ttl  time.Duration
}

func NewRoomCache(next queries.RoomReadStore, rdb *redis.Client, ttl time.Duration) *RoomCache {
	return &RoomCache{next: next, rdb: rdb, ttl: ttl}
}

func (c *RoomCache) FindByNumber(ctx context.Context, roomNumber int) (*queries.RoomView, error) {
	key := itemKey(roomNumber)
	var cached queries.RoomView
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	view, err := c.next.FindByNumber(ctx, roomNumber)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, view)
	return view, nil
}

func (c *RoomCache) List(ctx context.Context, openOnly bool) ([]*queries.RoomView, error) {
	key := keyListAll
	if openOnly {
		key = keyListOpen
	}

	var cached []*queries.RoomView
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	views, err := c.next.List(ctx, openOnly)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, views)
	return views, nil
}

// InvalidateRoom drops the room entry and both listings.
func (c *RoomCache) InvalidateRoom(ctx context.Context, roomNumber int) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, itemKey(roomNumber), keyListAll, keyListOpen).Err()
}

func (c *RoomCache) get(ctx context.Context, key string, dst any) bool {
	if c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("room cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("room cache entry corrupt", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *RoomCache) set(ctx context.Context, key string, v any) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("room cache write failed", "key", key, "error", err.Error())
	}
}
