package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/slotframe-app/slotframe/internal/models"
)

const framesKey = "frames:all"

// FrameCache keeps the frame listing (the hottest read) in redis for a
// short TTL. A nil *FrameCache is valid and disables caching, so callers
// never need to branch on configuration.
type FrameCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFrameCache(rdb *redis.Client, ttl time.Duration) *FrameCache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &FrameCache{rdb: rdb, ttl: ttl}
}

func (c *FrameCache) GetFrames(ctx context.Context) ([]models.ScheduleFrame, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, framesKey).Bytes()
	if err != nil {
		return nil, false
	}

	var frames []models.ScheduleFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return nil, false
	}
	return frames, true
}

func (c *FrameCache) SetFrames(ctx context.Context, frames []models.ScheduleFrame) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(frames)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, framesKey, raw, c.ttl)
}

// Invalidate drops the cached listing. Called after any booking or frame
// mutation so stale availability is bounded by a single request, not TTL.
func (c *FrameCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, framesKey)
}
