package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cmeynet/holbertonschool-hbnb/internal/adapters/observability"
	"github.com/cmeynet/holbertonschool-hbnb/internal/domain"
)

// Cache keeps each session's most recently fetched place list so the price
// filter can re-render without hitting the API again.
type Cache struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *Cache {
	return &Cache{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		ttl: ttl,
	}
}

func key(sid string) string { return "places:" + sid }

func (r *Cache) Get(ctx context.Context, sid string) ([]domain.Place, bool, error) {
	v, err := r.c.Get(ctx, key(sid)).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("places", "miss")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	observability.ObserveCache("places", "hit")
	var places []domain.Place
	if err := json.Unmarshal(v, &places); err != nil {
		return nil, false, err
	}
	return places, true, nil
}

func (r *Cache) Set(ctx context.Context, sid string, places []domain.Place) error {
	b, err := json.Marshal(places)
	if err != nil {
		return err
	}
	observability.ObserveCache("places", "set")
	return r.c.Set(ctx, key(sid), b, r.ttl).Err()
}

func (r *Cache) Del(ctx context.Context, sid string) error {
	observability.ObserveCache("places", "del")
	return r.c.Del(ctx, key(sid)).Err()
}
