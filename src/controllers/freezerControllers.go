package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type FreezerController struct {
	service *services.FreezerService
}

func NewFreezerController(service *services.FreezerService) *FreezerController {
	return &FreezerController{service: service}
}

// GetAllFreezers handles GET requests to retrieve all freezers with their racks and boxes
func (c *FreezerController) GetAllFreezers(ctx *gin.Context) {
	freezers, err := c.service.GetAllFreezers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取冰箱列表失败"})
		return
	}
	ctx.JSON(http.StatusOK, freezers)
}

// CreateFreezer handles POST requests to create a new freezer record
func (c *FreezerController) CreateFreezer(ctx *gin.Context) {
	var freezer models.FreezerModel
	if err := ctx.ShouldBindJSON(&freezer); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdFreezer, err := c.service.CreateFreezer(&freezer)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "创建冰箱失败"})
		return
	}
	ctx.JSON(http.StatusCreated, createdFreezer)
}

// UpdateFreezer handles PUT requests to update an existing freezer record
func (c *FreezerController) UpdateFreezer(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid freezer ID"})
		return
	}

	var updatedData models.FreezerModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedFreezer, err := c.service.UpdateFreezer(id, &updatedData)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "更新冰箱失败"})
		return
	}
	ctx.JSON(http.StatusOK, updatedFreezer)
}

// DeleteFreezer handles DELETE requests to remove a freezer and everything below it
func (c *FreezerController) DeleteFreezer(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid freezer ID"})
		return
	}

	if err := c.service.DeleteFreezer(id); err != nil {
		var storedErr *services.StoredCellsError
		if errors.As(err, &storedErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": storedErr.Message, "cellsCount": storedErr.Count})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "删除冰箱失败"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// GetLocationList handles GET requests for the flat storage-location list
func (c *FreezerController) GetLocationList(ctx *gin.Context) {
	locations, err := c.service.GetLocationList()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取位置列表失败"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"locations": locations})
}
