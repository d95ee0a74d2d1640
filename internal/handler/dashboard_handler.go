package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parsePositiveInt 解析查询参数中的正整数，非法时回退到默认值
func parsePositiveInt(raw string, fallback int) int {
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// AnalyticsSummary 返回面板首屏统计，存储故障时已由服务降级为零值
func (a *API) AnalyticsSummary(c *gin.Context) {
	limit := parsePositiveInt(c.DefaultQuery("recent", "10"), 10)
	c.JSON(http.StatusOK, a.analytics.Summary(limit))
}

// AnalyticsTopPages 返回浏览量最高的路径
func (a *API) AnalyticsTopPages(c *gin.Context) {
	limit := parsePositiveInt(c.DefaultQuery("limit", "10"), 10)
	c.JSON(http.StatusOK, gin.H{"pages": a.analytics.TopPages(limit)})
}

// AnalyticsTrends 返回最近 N 天的新增访客趋势
func (a *API) AnalyticsTrends(c *gin.Context) {
	days := parsePositiveInt(c.DefaultQuery("days", "7"), 7)
	c.JSON(http.StatusOK, gin.H{"trends": a.analytics.VisitorTrends(days, time.Now().UTC())})
}

// AnalyticsReset 清空统计数据
func (a *API) AnalyticsReset(c *gin.Context) {
	if err := a.analytics.Reset(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to reset analytics")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
