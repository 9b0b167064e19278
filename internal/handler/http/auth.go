package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"house-rental/internal/middleware"
	"house-rental/internal/service"
)

// sessionMaxAge 是会话 Cookie 的生存期 (秒)，与服务端 TTL 一致。
const sessionMaxAge = 24 * 60 * 60

// AuthHandler 封装了与用户认证相关的 HTTP 处理逻辑
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler 创建 AuthHandler 实例
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest 定义注册请求的结构体
type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Email    string `form:"email" json:"email" binding:"omitempty,email"`
}

// Register 处理用户注册请求。成功时设置会话并跳转首页；
// 用户名冲突返回 {valid:"0"} 封包。
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Register: invalid input format")
		ValidFail(c, "注册信息不完整")
		return
	}

	sess, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			ValidFail(c, "用户名已存在")
			return
		}
		logrus.WithError(err).WithField("username", req.Username).Error("Handler.Register: registration failed")
		ValidFail(c, "注册失败")
		return
	}

	middleware.SetSessionCookie(c, sess.ID, sessionMaxAge)
	c.Redirect(http.StatusFound, "/")
}

// LoginRequest 定义登录请求的结构体
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Login 处理用户登录请求。无论成败都跳转首页，
// 只有成功时才设置会话 Cookie。
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Login: invalid input format")
		c.Redirect(http.StatusFound, "/")
		return
	}

	sess, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logrus.WithField("username", req.Username).Warn("Handler.Login: authentication failed")
		c.Redirect(http.StatusFound, "/")
		return
	}

	middleware.SetSessionCookie(c, sess.ID, sessionMaxAge)
	c.Redirect(http.StatusFound, "/")
}

// Logout 清除服务端会话和 Cookie。
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(middleware.SessionCookie); err == nil && sid != "" {
		if err := h.authService.Logout(c.Request.Context(), sid); err != nil {
			logrus.WithError(err).Warn("Handler.Logout: failed to delete session")
		}
	}
	middleware.ClearSessionCookie(c)
	ValidOK(c, "已退出登录")
}
