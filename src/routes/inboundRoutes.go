package routes

import (
	"github.com/CellBank/CellBank-Backend/src/controllers"
	"github.com/CellBank/CellBank-Backend/src/middleware"
	"github.com/CellBank/CellBank-Backend/src/permissions"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupInboundRoutes(router *gin.Engine, service *services.InboundService) {
	inboundController := controllers.NewInboundController(service)

	// Protected routes
	inbound := router.Group("/inbound")
	inbound.Use(middleware.AuthMiddleware())
	{
		inbound.POST("/batch", middleware.RequirePermission(permissions.InboundBatch), inboundController.ValidateBatch)
		inbound.POST("/batch/commit", middleware.RequirePermission(permissions.InboundBatch), inboundController.CommitBatch)
		inbound.POST("/import", middleware.RequirePermission(permissions.InboundBatch), inboundController.ImportWorkbook)
		inbound.GET("/template", middleware.RequirePermission(permissions.InboundBatch), inboundController.DownloadTemplate)
	}
}
