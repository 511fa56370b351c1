package redis

import (
	"context"
	"time"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return r.Set(ctx, constvars.SessionKeyPrefix+session.SessionID, session, ttl)
}

func (r *redisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.Get(ctx, constvars.SessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (r *redisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Delete(ctx, constvars.SessionKeyPrefix+sessionID)
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err, key)
	}
	return data, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
