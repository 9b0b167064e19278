package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"house-rental/internal/dto"
	"house-rental/internal/middleware"
	"house-rental/internal/service"
)

// UserHandler 封装了收藏/浏览历史/个人资料相关的 HTTP 处理逻辑
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// AddCollection 收藏房源。重复收藏拒绝且不落库。
func (h *UserHandler) AddCollection(c *gin.Context) {
	houseID, err := strconv.ParseUint(c.Param("house_id"), 10, 64)
	if err != nil {
		ValidFail(c, "操作失败！")
		return
	}
	err = h.userService.AddCollection(c.Request.Context(), middleware.SessionFrom(c), uint(houseID))
	if err != nil {
		HandleUserActionError(c, err)
		return
	}
	ValidOK(c, "收藏成功！")
}

// CollectOffRequest 定义取消收藏的请求结构体
type CollectOffRequest struct {
	HouseID  string `form:"house_id" json:"house_id" binding:"required"`
	UserName string `form:"user_name" json:"user_name" binding:"required"`
}

// CollectOff 取消收藏。会话身份必须与 user_name 一致。
func (h *UserHandler) CollectOff(c *gin.Context) {
	var req CollectOffRequest
	if err := c.ShouldBind(&req); err != nil {
		ValidFail(c, "操作失败！")
		return
	}
	houseID, err := strconv.ParseUint(req.HouseID, 10, 64)
	if err != nil {
		ValidFail(c, "操作失败！")
		return
	}
	err = h.userService.RemoveCollection(c.Request.Context(), middleware.SessionFrom(c), req.UserName, uint(houseID))
	if err != nil {
		HandleUserActionError(c, err)
		return
	}
	ValidOK(c, "已取消收藏")
}

// DelRecordRequest 定义清空浏览记录的请求结构体
type DelRecordRequest struct {
	UserName string `form:"user_name" json:"user_name" binding:"required"`
}

// DelRecord 清空浏览历史。会话身份必须与 user_name 一致。
func (h *UserHandler) DelRecord(c *gin.Context) {
	var req DelRecordRequest
	if err := c.ShouldBind(&req); err != nil {
		ValidFail(c, "操作失败")
		return
	}
	err := h.userService.ClearHistory(c.Request.Context(), middleware.SessionFrom(c), req.UserName)
	if err != nil {
		HandleUserActionError(c, err)
		return
	}
	ValidOK(c, "浏览记录已清空")
}

// ModifyUserInfo 修改个人资料的单个字段，field ∈ {name, addr, pd, email}。
// 响应只有 {ok:"1"/"0"}，改名冲突附带 msg。
func (h *UserHandler) ModifyUserInfo(c *gin.Context) {
	field := c.Param("field")
	value := c.PostForm(field)

	err := h.userService.ModifyInfo(c.Request.Context(), middleware.SessionFrom(c), field, value)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			c.JSON(http.StatusOK, gin.H{"ok": "0", "msg": "用户名已存在"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": "0"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": "1"})
}

// Profile 返回个人主页数据：用户资料 + 收藏/浏览过的房源。
func (h *UserHandler) Profile(c *gin.Context) {
	data, err := h.userService.Profile(c.Request.Context(), middleware.SessionFrom(c), c.Param("username"))
	if err != nil {
		HandleUserActionError(c, err)
		return
	}
	CodeData(c, gin.H{
		"user": gin.H{
			"id":    data.User.ID,
			"name":  data.User.Name,
			"email": data.User.Email,
			"addr":  data.User.Addr,
		},
		"collected": dto.FromHouses(data.Collected),
		"seen":      dto.FromHouses(data.Seen),
	})
}
