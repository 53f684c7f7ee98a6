package statscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// TTL keeps cached stats briefly fresh for display. Never use cached values
// to authorize a write.
const TTL = 30 * time.Second

type Provider interface {
	Get(ctx context.Context, key string, out interface{}) (found bool, err error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, keys ...string) error
	Close() error
}

var Instance Provider

func Connect(addr, password string, db int) error {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}
	Instance = &impl{client: client}
	return nil
}

type impl struct {
	client *redis.Client
}

func (i impl) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := i.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err = json.Unmarshal(data, out); err != nil {
		return false, errors.Wrap(err, "failed to decode cached value")
	}
	return true, nil
}

func (i impl) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to encode value for cache")
	}
	return i.client.Set(ctx, key, data, TTL).Err()
}

func (i impl) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return i.client.Del(ctx, keys...).Err()
}

func (i impl) Close() error {
	return i.client.Close()
}
