package cartrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	"github.com/redis/go-redis/v9"
)

// cartTTL bounds how long an abandoned cart survives.
const cartTTL = 7 * 24 * time.Hour

// Redis keeps carts as a JSON list under cart:<userID>, so a restart of the
// API process does not drop staged selections.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis { return &Redis{client: client} }

func cartKey(userID string) string { return fmt.Sprintf("cart:%s", userID) }

func (r *Redis) Get(ctx context.Context, userID string) ([]model.CartItem, error) {
	raw, err := r.client.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Redis) Add(ctx context.Context, userID string, item model.CartItem) error {
	items, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}
	items = append(items, item)
	return r.save(ctx, userID, items)
}

func (r *Redis) Remove(ctx context.Context, userID, itemID string) error {
	items, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		return r.Clear(ctx, userID)
	}
	return r.save(ctx, userID, kept)
}

func (r *Redis) Clear(ctx context.Context, userID string) error {
	return r.client.Del(ctx, cartKey(userID)).Err()
}

func (r *Redis) save(ctx context.Context, userID string, items []model.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(userID), raw, cartTTL).Err()
}
