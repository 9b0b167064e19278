package redissession

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"house-rental/internal/domain"
	"house-rental/internal/repository"
)

// RedisSessionStore 是 SessionStore 接口的 Redis 实现。
// 每个会话存一个 Hash (user_id/user_name)，带滑动过期时间：
// 读取时刷新 TTL，使活跃用户的会话跨请求存在。
type RedisSessionStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisSessionStore 创建 RedisSessionStore 实例
func NewRedisSessionStore(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisSessionStore {
	if client == nil {
		panic("redis client cannot be nil for RedisSessionStore")
	}
	if keyPrefix == "" {
		keyPrefix = "hr:" // 默认前缀 "hr:" (house-rental)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisSessionStore{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (s *RedisSessionStore) sessionKey(id string) string {
	return fmt.Sprintf("%ssession:%s", s.keyPrefix, id)
}

// Save 写入会话 Hash 并设置过期时间。
func (s *RedisSessionStore) Save(ctx context.Context, sess *domain.Session) error {
	key := s.sessionKey(sess.ID)
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, key, "user_id", sess.UserID, "user_name", sess.UserName)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis: save session %s: %w", sess.ID, err)
	}
	return nil
}

// Find 读取会话并刷新 TTL；不存在或已过期时返回 ErrSessionNotFound。
func (s *RedisSessionStore) Find(ctx context.Context, id string) (*domain.Session, error) {
	key := s.sessionKey(id)
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: find session %s: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, repository.ErrSessionNotFound
	}
	userID, err := strconv.ParseUint(fields["user_id"], 10, 64)
	if err != nil {
		// 会话数据损坏，按不存在处理
		return nil, repository.ErrSessionNotFound
	}
	// 滑动过期：活跃会话续期，失败不影响本次读取
	s.client.Expire(ctx, key, s.ttl)

	return &domain.Session{
		ID:       id,
		UserID:   uint(userID),
		UserName: fields["user_name"],
	}, nil
}

// Delete 删除会话；删除不存在的会话不是错误。
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis: delete session %s: %w", id, err)
	}
	return nil
}
