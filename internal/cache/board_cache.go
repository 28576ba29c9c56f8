package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyBoardList = "boards:list:"

// BoardCache caches per-user board listings in Redis. The listing is the
// hottest read (every board screen starts with it) and its scope filter is
// an owner-union-collaborator query, so a short TTL pays off.
type BoardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewBoardCache returns a new BoardCache.
func NewBoardCache(rdb *redis.Client, ttl time.Duration) *BoardCache {
	return &BoardCache{rdb: rdb, ttl: ttl}
}

func listKey(userID int64) string {
	return keyBoardList + strconv.FormatInt(userID, 10)
}

// GetList returns the cached board list for the user, or nil on miss.
func (c *BoardCache) GetList(ctx context.Context, userID int64) ([]dom.Board, error) {
	b, err := c.rdb.Get(ctx, listKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Board
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the board list for the user.
func (c *BoardCache) SetList(ctx context.Context, userID int64, list []dom.Board) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(userID), b, c.ttl).Err()
}

// Invalidate drops the cached list for the given users (owner plus
// collaborators after any board or grant write).
func (c *BoardCache) Invalidate(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = listKey(id)
	}
	return c.rdb.Del(ctx, keys...).Err()
}
