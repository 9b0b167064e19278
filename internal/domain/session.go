package domain

// Session 是一次已认证连接的服务端会话状态。
// 由 Web 层持有，核心逻辑只通过其中的用户 ID/用户名引用身份。
type Session struct {
	ID       string `json:"-"`         // 会话标识符 (uuid)，通过 Cookie 下发
	UserID   uint   `json:"user_id"`   // 已登录用户 ID
	UserName string `json:"user_name"` // 已登录用户名
}
