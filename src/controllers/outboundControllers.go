package controllers

import (
	"net/http"
	"strconv"

	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type OutboundController struct {
	service *services.OutboundService
}

func NewOutboundController(service *services.OutboundService) *OutboundController {
	return &OutboundController{service: service}
}

type outboundRequest struct {
	CellIds  []int  `json:"cellIds"`
	Reason   string `json:"reason"`
	Operator string `json:"operator"`
}

// RemoveCells handles POST requests that take selected cells out of storage
func (c *OutboundController) RemoveCells(ctx *gin.Context) {
	var req outboundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := c.service.RemoveCells(req.CellIds, req.Reason, req.Operator)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// GetRecords handles GET requests for the outbound history
func (c *OutboundController) GetRecords(ctx *gin.Context) {
	search := ctx.Query("search")
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	records, total, err := c.service.ListRecords(search, page, pageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取出库记录失败"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"records":  records,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}
