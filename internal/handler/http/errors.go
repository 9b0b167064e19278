package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"house-rental/internal/service"
)

// HandleUserActionError 把用户操作类业务错误映射为 {valid, msg} 封包。
func HandleUserActionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		ValidFail(c, "请先登录！")
	case errors.Is(err, service.ErrIdentityMismatch):
		ValidFail(c, "用户验证失败！")
	case errors.Is(err, service.ErrAlreadyCollected):
		ValidFail(c, "您已收藏过该房源！")
	case errors.Is(err, service.ErrNotCollected):
		ValidFail(c, "未找到该收藏记录")
	case errors.Is(err, service.ErrUserNotFound):
		ValidFail(c, "操作失败！")
	default:
		logrus.WithError(err).Error("Unhandled service error")
		ValidFail(c, "操作失败！")
	}
}
