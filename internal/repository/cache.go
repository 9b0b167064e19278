package repository

import "context"

// ChartCache 缓存图表聚合端点的 JSON 结果。
// 聚合是只读且可重复计算的，缓存失效只影响延迟，不影响正确性。
type ChartCache interface {
	// Get 读取缓存并反序列化到 dest；命中返回 true。
	// 缓存层故障不应阻断请求，实现可以记日志后按未命中处理。
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set 序列化 v 并带 TTL 写入缓存。
	Set(ctx context.Context, key string, v interface{}) error
}
