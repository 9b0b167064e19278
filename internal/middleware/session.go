package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"house-rental/internal/domain"
	"house-rental/internal/repository"
)

// SessionCookie 是承载会话 ID 的 Cookie 名。
const SessionCookie = "session_id"

// sessionContextKey 是会话在 Gin Context 中的键。
const sessionContextKey = "session"

// Session 返回一个 Gin 中间件，从 Cookie 加载服务端会话。
// 未登录不是错误：没有 Cookie 或会话已过期时直接放行，
// 各 Handler 自行决定是否要求登录。
func Session(store repository.SessionStore) gin.HandlerFunc {
	if store == nil {
		panic("SessionStore cannot be nil for Session middleware")
	}
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			c.Next()
			return
		}
		sess, err := store.Find(c.Request.Context(), sid)
		if err != nil {
			if !errors.Is(err, repository.ErrSessionNotFound) {
				logrus.WithError(err).Warn("Session middleware: store lookup failed")
			}
			c.Next()
			return
		}
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// SessionFrom 从 Gin Context 取当前会话；未登录时返回 nil。
func SessionFrom(c *gin.Context) *domain.Session {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	sess, ok := v.(*domain.Session)
	if !ok {
		return nil
	}
	return sess
}

// RequireLogin 返回一个要求已登录的中间件。
// 业务错误统一走成功态封包：未登录返回 200 + {valid:"0"}。
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFrom(c) == nil {
			c.JSON(http.StatusOK, gin.H{"valid": "0", "msg": "请先登录！"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSessionCookie 把会话 ID 写入响应 Cookie。
func SetSessionCookie(c *gin.Context, sessionID string, maxAge int) {
	c.SetCookie(SessionCookie, sessionID, maxAge, "/", "", false, true)
}

// ClearSessionCookie 清除会话 Cookie。
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
