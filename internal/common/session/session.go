package session

import (
	"context"
	"fmt"
	"time"

	"circles/internal/pkg/redis"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const sessionKey = "session:%d:%s"

// Session is the payload recorded for a logged-in user. A token is only
// honored while its session entry exists, so logout revokes it immediately.
type Session struct {
	UserID    int64 `json:"userId"`
	CreatedAt int64 `json:"createdAt"`
}

func (s *Session) Encode() []byte {
	b, _ := json.Marshal(s)
	return b
}

func (s *Session) Decode(b []byte) error {
	return json.Unmarshal(b, s)
}

type Store interface {
	Save(ctx context.Context, userID int64, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, userID int64, sessionID string) (bool, error)
	Delete(ctx context.Context, userID int64, sessionID string) error
}

type RedisStore struct {
	rdb *redis.Redis
}

func NewRedisStore(rdb *redis.Redis) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, userID int64, sessionID string, ttl time.Duration) error {
	key := fmt.Sprintf(sessionKey, userID, sessionID)
	payload := Session{UserID: userID, CreatedAt: time.Now().Unix()}
	_, err := s.rdb.Wrap(ctx, func(ctx2 context.Context) (any, string, error) {
		cmd := s.rdb.Set(ctx2, key, payload.Encode(), ttl)
		return cmd.Val(), cmd.String(), cmd.Err()
	})
	return err
}

func (s *RedisStore) Exists(ctx context.Context, userID int64, sessionID string) (bool, error) {
	key := fmt.Sprintf(sessionKey, userID, sessionID)
	n, err := s.rdb.Wrap(ctx, func(ctx2 context.Context) (any, string, error) {
		cmd := s.rdb.Exists(ctx2, key)
		return cmd.Val(), cmd.String(), cmd.Err()
	})
	if err != nil {
		return false, err
	}
	return n.(int64) > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, userID int64, sessionID string) error {
	key := fmt.Sprintf(sessionKey, userID, sessionID)
	_, err := s.rdb.Wrap(ctx, func(ctx2 context.Context) (any, string, error) {
		cmd := s.rdb.Del(ctx2, key)
		return cmd.Val(), cmd.String(), cmd.Err()
	})
	return err
}
