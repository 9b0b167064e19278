package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RedisChartCache 是 ChartCache 接口的 Redis 实现。
// 图表聚合是只读且可重复计算的，所以缓存层故障被降级为未命中，
// 只记日志，不向上传播。
type RedisChartCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisChartCache 创建 RedisChartCache 实例
func NewRedisChartCache(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisChartCache {
	if client == nil {
		panic("redis client cannot be nil for RedisChartCache")
	}
	if keyPrefix == "" {
		keyPrefix = "hr:"
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisChartCache{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (c *RedisChartCache) chartKey(key string) string {
	return fmt.Sprintf("%schart:%s", c.keyPrefix, key)
}

// Get 读取缓存的 JSON 并反序列化到 dest；命中返回 true。
func (c *RedisChartCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, c.chartKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		logrus.WithError(err).WithField("key", key).Warn("ChartCache: Get failed, treating as miss")
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("ChartCache: stale payload, treating as miss")
		return false, nil
	}
	return true, nil
}

// Set 序列化 v 并带 TTL 写入缓存。
func (c *RedisChartCache) Set(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("chart cache: marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.chartKey(key), raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("ChartCache: Set failed")
	}
	return nil
}
