package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"park-itinerary-service/internal/domain"
	"park-itinerary-service/internal/ports"
)

// RedisCurveCache is a read-through cache for wait curves in front of a
// ForecastProvider. Cache failures degrade to the inner provider; planning
// must never fail because the cache is down.
type RedisCurveCache struct {
	client *redis.Client
	inner  ports.ForecastProvider
	ttl    time.Duration
}

func NewRedisCurveCache(client *redis.Client, inner ports.ForecastProvider, ttl time.Duration) *RedisCurveCache {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &RedisCurveCache{client: client, inner: inner, ttl: ttl}
}

type cachedCurve struct {
	StartHour int       `json:"start_hour"`
	Values    []float64 `json:"values"`
}

func curveKey(attractionID string, class domain.DayClass) string {
	return "curve|" + string(class) + "|" + attractionID
}

// Return the curve from cache, falling back to the inner provider and
// populating the cache on miss.
func (c *RedisCurveCache) GetCurve(ctx context.Context, attractionID string, class domain.DayClass) (domain.WaitCurve, error) {
	key := curveKey(attractionID, class)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var cc cachedCurve
		if jerr := json.Unmarshal(raw, &cc); jerr == nil {
			return domain.WaitCurve{StartHour: cc.StartHour, Values: cc.Values}, nil
		}
		// Corrupt entry; treat as a miss and overwrite below.
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("curve cache get failed: key=%s err=%v", key, err)
	}

	curve, err := c.inner.GetCurve(ctx, attractionID, class)
	if err != nil {
		return domain.WaitCurve{}, err
	}

	c.put(ctx, key, curve)
	return curve, nil
}

// Return curves for many attractions, serving hits from cache and fetching
// only the misses from the inner provider.
func (c *RedisCurveCache) GetCurves(ctx context.Context, attractionIDs []string, class domain.DayClass) (map[string]domain.WaitCurve, error) {
	out := make(map[string]domain.WaitCurve, len(attractionIDs))
	misses := make([]string, 0, len(attractionIDs))

	keys := make([]string, len(attractionIDs))
	for i, id := range attractionIDs {
		keys[i] = curveKey(id, class)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		log.Printf("curve cache mget failed: err=%v", err)
		vals = make([]any, len(keys))
	}

	for i, id := range attractionIDs {
		s, ok := vals[i].(string)
		if !ok {
			misses = append(misses, id)
			continue
		}
		var cc cachedCurve
		if jerr := json.Unmarshal([]byte(s), &cc); jerr != nil {
			misses = append(misses, id)
			continue
		}
		out[id] = domain.WaitCurve{StartHour: cc.StartHour, Values: cc.Values}
	}

	if len(misses) == 0 {
		return out, nil
	}

	fresh, err := fetchMisses(ctx, c.inner, misses, class)
	if err != nil {
		return nil, err
	}
	for id, curve := range fresh {
		out[id] = curve
		c.put(ctx, curveKey(id, class), curve)
	}

	return out, nil
}

func fetchMisses(ctx context.Context, inner ports.ForecastProvider, ids []string, class domain.DayClass) (map[string]domain.WaitCurve, error) {
	if bp, ok := inner.(ports.ForecastBatchProvider); ok {
		return bp.GetCurves(ctx, ids, class)
	}

	out := make(map[string]domain.WaitCurve, len(ids))
	for _, id := range ids {
		curve, err := inner.GetCurve(ctx, id, class)
		if err != nil {
			if errors.Is(err, ports.ErrNoForecast) {
				continue
			}
			return nil, err
		}
		out[id] = curve
	}
	return out, nil
}

func (c *RedisCurveCache) put(ctx context.Context, key string, curve domain.WaitCurve) {
	raw, err := json.Marshal(cachedCurve{StartHour: curve.StartHour, Values: curve.Values})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("curve cache set failed: key=%s err=%v", key, err)
	}
}
