package repository

import (
	"context"

	"house-rental/internal/domain"
)

// SessionStore 定义了服务端会话的存取操作。
// 会话在登录/注册成功时创建，登出时删除，其余时间跨请求存在。
type SessionStore interface {
	// Save 写入会话并刷新其过期时间。
	Save(ctx context.Context, sess *domain.Session) error

	// Find 根据会话 ID 读取会话；不存在或已过期时返回 ErrSessionNotFound。
	Find(ctx context.Context, id string) (*domain.Session, error)

	// Delete 删除会话；删除不存在的会话不是错误。
	Delete(ctx context.Context, id string) error
}
