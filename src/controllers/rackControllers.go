package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type RackController struct {
	service *services.RackService
}

func NewRackController(service *services.RackService) *RackController {
	return &RackController{service: service}
}

// CreateRack handles POST requests to create a new rack record
func (c *RackController) CreateRack(ctx *gin.Context) {
	var rack models.RackModel
	if err := ctx.ShouldBindJSON(&rack); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdRack, err := c.service.CreateRack(&rack)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "创建架子失败"})
		return
	}
	ctx.JSON(http.StatusCreated, createdRack)
}

// UpdateRack handles PUT requests to update an existing rack record
func (c *RackController) UpdateRack(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rack ID"})
		return
	}

	var updatedData models.RackModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedRack, err := c.service.UpdateRack(id, &updatedData)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "更新架子失败"})
		return
	}
	ctx.JSON(http.StatusOK, updatedRack)
}

// DeleteRack handles DELETE requests to remove a rack and its boxes
func (c *RackController) DeleteRack(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rack ID"})
		return
	}

	if err := c.service.DeleteRack(id); err != nil {
		var storedErr *services.StoredCellsError
		if errors.As(err, &storedErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": storedErr.Message, "cellsCount": storedErr.Count})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "删除架子失败"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
