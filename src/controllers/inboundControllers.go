package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/CellBank/CellBank-Backend/src/dtos"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type InboundController struct {
	service *services.InboundService
}

func NewInboundController(service *services.InboundService) *InboundController {
	return &InboundController{service: service}
}

type bulkRowsRequest struct {
	Rows []dtos.ProposedInboundRow `json:"rows"`
}

// ValidateBatch handles POST requests that validate a bulk-inbound
// submission without committing anything
func (c *InboundController) ValidateBatch(ctx *gin.Context) {
	var req bulkRowsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || len(req.Rows) == 0 {
		ctx.JSON(http.StatusOK, dtos.ValidationResult{
			Success: false,
			Errors:  []dtos.ValidationError{{Row: 0, Message: "没有数据需要校验"}},
		})
		return
	}

	validationErrors, err := c.service.ValidateRows(req.Rows)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "校验失败，请稍后重试"})
		return
	}

	if len(validationErrors) > 0 {
		ctx.JSON(http.StatusOK, dtos.ValidationResult{Success: false, Errors: validationErrors})
		return
	}
	ctx.JSON(http.StatusOK, dtos.ValidationResult{Success: true, Message: "校验通过"})
}

// CommitBatch handles POST requests that validate and, if the submission is
// clean, commit every row. Rows commit independently; the response carries
// a per-row outcome list.
func (c *InboundController) CommitBatch(ctx *gin.Context) {
	var req bulkRowsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || len(req.Rows) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "没有数据需要入库"})
		return
	}

	validationErrors, err := c.service.ValidateRows(req.Rows)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "校验失败，请稍后重试"})
		return
	}
	if len(validationErrors) > 0 {
		ctx.JSON(http.StatusOK, dtos.ValidationResult{Success: false, Errors: validationErrors})
		return
	}

	result := c.service.CommitRows(req.Rows)
	ctx.JSON(http.StatusOK, result)
}

// ImportWorkbook handles multipart uploads of a filled-in template; the
// parsed rows come back together with their validation result so the
// operator can fix the sheet in one round-trip.
func (c *InboundController) ImportWorkbook(ctx *gin.Context) {
	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "请上传Excel文件"})
		return
	}
	defer file.Close()

	rows, err := c.service.ParseWorkbook(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(rows) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "文件中没有数据"})
		return
	}

	validationErrors, err := c.service.ValidateRows(rows)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "校验失败，请稍后重试"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"rows":    rows,
		"success": len(validationErrors) == 0,
		"errors":  validationErrors,
	})
}

// DownloadTemplate handles GET requests for the bulk-inbound template workbook
func (c *InboundController) DownloadTemplate(ctx *gin.Context) {
	f, err := c.service.Template()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "生成模板失败"})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("batch_inbound_template_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "生成模板失败"})
	}
}

// CreateBatch handles POST requests for a single manual inbound
func (c *InboundController) CreateBatch(ctx *gin.Context) {
	var dto dtos.CreateBatchDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch, cells, err := c.service.CreateBatch(&dto)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"batch": batch, "cells": cells})
}
