package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"house-rental/internal/dto"
	"house-rental/internal/middleware"
	"house-rental/internal/service"
)

// HouseHandler 封装了房源浏览/搜索相关的 HTTP 处理逻辑
type HouseHandler struct {
	houseService *service.HouseService
}

// NewHouseHandler 创建 HouseHandler 实例
func NewHouseHandler(houseService *service.HouseService) *HouseHandler {
	return &HouseHandler{houseService: houseService}
}

// Index 返回首页数据：热门 8 条 + 最新 6 条。
func (h *HouseHandler) Index(c *gin.Context) {
	data, err := h.houseService.Index(c.Request.Context())
	if err != nil {
		CodeFail(c, "加载首页数据失败")
		return
	}
	CodeData(c, gin.H{
		"hot_houses": dto.FromHouses(data.Hot),
		"new_houses": dto.FromHouses(data.New),
	})
}

// List 返回分类列表页：pattern 按发布时间，hot_house 按浏览量。
func (h *HouseHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Param("page"))
	result, err := h.houseService.List(c.Request.Context(), c.Param("category"), page)
	if err != nil {
		CodeFail(c, "加载房源列表失败")
		return
	}
	writePagedResult(c, result)
}

// Search 处理 /search：关键词/定位/户型/出租方式下推存储层，
// 价格/面积区间在内存中过滤，固定页大小 9。
func (h *HouseHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	params := service.SearchParams{
		Page:     page,
		Keyword:  c.Query("keyword"),
		Region:   c.Query("region"),
		Rooms:    c.Query("rooms"),
		RentType: c.Query("rent_type"),
		Price:    c.Query("price"),
		Area:     c.Query("area"),
	}

	result, err := h.houseService.Search(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			CodeFail(c, "价格/面积区间格式错误")
			return
		}
		CodeFail(c, "搜索失败")
		return
	}
	writePagedResult(c, result)
}

// writePagedResult 输出一页结果及分页元信息 (含有界页码窗口)。
func writePagedResult(c *gin.Context, result *service.SearchResult) {
	CodeData(c, gin.H{
		"houses": dto.FromHouses(result.Houses),
		"page":   result.Page.Num,
		"total":  result.Page.Total,
		"pages":  result.Page.Pages,
		"window": result.Page.Window(),
	})
}

// Detail 返回房源详情；浏览量 +1，已登录时记入浏览历史。
func (h *HouseHandler) Detail(c *gin.Context) {
	houseID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		CodeFail(c, "房源不存在")
		return
	}

	data, err := h.houseService.Detail(c.Request.Context(), uint(houseID), middleware.SessionFrom(c))
	if err != nil {
		if errors.Is(err, service.ErrHouseNotFound) {
			CodeFail(c, "房源不存在")
			return
		}
		logrus.WithError(err).WithField("house_id", houseID).Error("Handler.Detail: service failed")
		CodeFail(c, "加载房源详情失败")
		return
	}
	CodeData(c, gin.H{
		"house":           dto.FromHouse(data.House),
		"recommendations": dto.FromHouses(data.Recommendations),
	})
}

// Recommendations 返回热门推荐房源 (点击搜索框时展示)。
func (h *HouseHandler) Recommendations(c *gin.Context) {
	houses, err := h.houseService.HotRecommendations(c.Request.Context())
	if err != nil {
		CodeFail(c, "加载推荐失败")
		return
	}
	CodeData(c, dto.FromHouses(houses))
}

// KeywordRequest 定义轻量关键词搜索的请求结构体
type KeywordRequest struct {
	Kw   string `form:"kw" json:"kw"`
	Info string `form:"info" json:"info"` // "地区搜索" 或 "户型搜索"
}

// Keyword 处理实时关键词搜索：空关键词和空结果都走 code:0 封包。
func (h *HouseHandler) Keyword(c *gin.Context) {
	var req KeywordRequest
	_ = c.ShouldBind(&req)

	houses, err := h.houseService.KeywordSearch(c.Request.Context(), req.Kw, req.Info)
	if err != nil {
		if errors.Is(err, service.ErrEmptyKeyword) {
			CodeFail(c, "关键词为空")
			return
		}
		CodeFail(c, "搜索失败")
		return
	}
	if len(houses) == 0 {
		CodeFail(c, fmt.Sprintf(`未找到关于 "%s" 的房屋信息！`, req.Kw))
		return
	}
	CodeData(c, dto.FromHouses(houses))
}
