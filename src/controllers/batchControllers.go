package controllers

import (
	"net/http"
	"strconv"

	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type BatchController struct {
	service *services.BatchService
}

func NewBatchController(service *services.BatchService) *BatchController {
	return &BatchController{service: service}
}

// GetBatches handles GET requests for the paginated inventory list
func (c *BatchController) GetBatches(ctx *gin.Context) {
	search := ctx.Query("search")
	status := ctx.DefaultQuery("status", "all")
	cellType := ctx.DefaultQuery("cellType", "all")
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	list, err := c.service.ListBatches(search, status, cellType, page, pageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取批次列表失败"})
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetCellTypes handles GET requests for the distinct cell type list
func (c *BatchController) GetCellTypes(ctx *gin.Context) {
	cellTypes, err := c.service.GetCellTypes()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取细胞类型列表失败"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"cellTypes": cellTypes})
}
