package http

import (
	"github.com/gin-gonic/gin"

	"house-rental/internal/service"
)

// ChartHandler 封装了四个图表数据端点。
// 路径参数是 "区-街道-小区" 复合定位串，可以只有前缀段。
type ChartHandler struct {
	chartService *service.ChartService
}

// NewChartHandler 创建 ChartHandler 实例
func NewChartHandler(chartService *service.ChartService) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// Scatter 返回 (面积, 价格) 散点数据。
func (h *ChartHandler) Scatter(c *gin.Context) {
	data, err := h.chartService.ScatterData(c.Request.Context(), c.Param("region"))
	if err != nil {
		CodeFail(c, "加载图表数据失败")
		return
	}
	ChartData(c, data)
}

// Pie 返回按户型分组的前 5 组计数。
func (h *ChartHandler) Pie(c *gin.Context) {
	data, err := h.chartService.PieData(c.Request.Context(), c.Param("region"))
	if err != nil {
		CodeFail(c, "加载图表数据失败")
		return
	}
	ChartData(c, data)
}

// Column 返回热门小区均价柱状图数据。
func (h *ChartHandler) Column(c *gin.Context) {
	data, err := h.chartService.ColumnData(c.Request.Context(), c.Param("region"))
	if err != nil {
		CodeFail(c, "加载图表数据失败")
		return
	}
	ChartData(c, data)
}

// BrokenLine 返回两个固定户型的价格折线数据。
func (h *ChartHandler) BrokenLine(c *gin.Context) {
	data, err := h.chartService.BrokenLineData(c.Request.Context(), c.Param("region"))
	if err != nil {
		CodeFail(c, "加载图表数据失败")
		return
	}
	ChartData(c, data)
}
