package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type BoxController struct {
	service *services.BoxService
}

func NewBoxController(service *services.BoxService) *BoxController {
	return &BoxController{service: service}
}

// CreateBox handles POST requests to create a new box record
func (c *BoxController) CreateBox(ctx *gin.Context) {
	var box models.BoxModel
	if err := ctx.ShouldBindJSON(&box); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdBox, err := c.service.CreateBox(&box)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "创建盒子失败"})
		return
	}
	ctx.JSON(http.StatusCreated, createdBox)
}

// GetBoxByID handles GET requests for a box with its occupied positions
func (c *BoxController) GetBoxByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid box ID"})
		return
	}

	box, err := c.service.GetBoxByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "盒子不存在"})
		return
	}
	ctx.JSON(http.StatusOK, box)
}

// UpdateBox handles PUT requests to update an existing box record
func (c *BoxController) UpdateBox(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid box ID"})
		return
	}

	var updatedData models.BoxModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedBox, err := c.service.UpdateBox(id, &updatedData)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "更新盒子失败"})
		return
	}
	ctx.JSON(http.StatusOK, updatedBox)
}

// DeleteBox handles DELETE requests to remove a box record
func (c *BoxController) DeleteBox(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid box ID"})
		return
	}

	if err := c.service.DeleteBox(id); err != nil {
		var storedErr *services.StoredCellsError
		if errors.As(err, &storedErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": storedErr.Message, "cellsCount": storedErr.Count})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "删除盒子失败"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
