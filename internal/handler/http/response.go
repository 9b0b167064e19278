package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 业务结果统一走成功态 (HTTP 200) 的 JSON 封包，调用方检查
// 负载中的标志字段 (valid/code/ok)，而不是传输层状态码。

// ValidOK 返回 {valid:"1", msg}。
func ValidOK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"valid": "1", "msg": msg})
}

// ValidFail 返回 {valid:"0", msg}。
func ValidFail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"valid": "0", "msg": msg})
}

// CodeData 返回 {code:1, data}。
func CodeData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": 1, "data": data})
}

// CodeFail 返回 {code:0, msg}。
func CodeFail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "msg": msg})
}

// ChartData 返回 {data} (图表端点的原始形状)。
func ChartData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}
