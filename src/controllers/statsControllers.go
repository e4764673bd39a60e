package controllers

import (
	"net/http"
	"time"

	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type StatsController struct {
	service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{service: service}
}

// GetOverview handles GET requests for the dashboard statistics
func (c *StatsController) GetOverview(ctx *gin.Context) {
	overview, err := c.service.Overview()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计数据失败"})
		return
	}
	ctx.JSON(http.StatusOK, overview)
}

// GetTimeRange handles GET requests for a report over an arbitrary date range
func (c *StatsController) GetTimeRange(ctx *gin.Context) {
	startStr := ctx.Query("startDate")
	endStr := ctx.Query("endDate")
	if startStr == "" || endStr == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "缺少日期参数"})
		return
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "日期格式无效"})
		return
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "日期格式无效"})
		return
	}

	stats, err := c.service.TimeRange(start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计数据失败"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
