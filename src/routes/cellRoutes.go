package routes

import (
	"github.com/CellBank/CellBank-Backend/src/controllers"
	"github.com/CellBank/CellBank-Backend/src/middleware"
	"github.com/CellBank/CellBank-Backend/src/permissions"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCellRoutes(router *gin.Engine, batchService *services.BatchService, inboundService *services.InboundService) {
	batchController := controllers.NewBatchController(batchService)
	inboundController := controllers.NewInboundController(inboundService)

	// Protected routes
	cells := router.Group("/cells")
	cells.Use(middleware.AuthMiddleware())
	{
		cells.GET("/", middleware.RequirePermission(permissions.InventoryRead), batchController.GetBatches)
		cells.POST("/", middleware.RequirePermission(permissions.InboundCreate), inboundController.CreateBatch)
	}

	cellTypes := router.Group("/cell-types")
	cellTypes.Use(middleware.AuthMiddleware())
	{
		cellTypes.GET("/", middleware.RequirePermission(permissions.InventoryRead), batchController.GetCellTypes)
	}

	batches := router.Group("/batches")
	batches.Use(middleware.AuthMiddleware())
	{
		batches.GET("/", middleware.RequirePermission(permissions.InventoryRead), batchController.GetBatches)
	}
}
