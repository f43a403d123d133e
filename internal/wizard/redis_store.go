package wizard

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	domain "github.com/jlbeauty/salon-booking-api/internal/domain/wizard"
	"github.com/jlbeauty/salon-booking-api/internal/httperr"
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func draftKey(id string) string {
	return "booking:draft:" + id
}

func (s *RedisStore) Save(ctx context.Context, d *domain.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, draftKey(d.ID), raw, DraftTTL).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Draft, error) {
	raw, err := s.rdb.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, httperr.ErrBusiness("draft_not_found")
	}
	if err != nil {
		return nil, err
	}

	var d domain.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, draftKey(id)).Err()
}

var _ Store = (*RedisStore)(nil)
