package routes

import (
	"github.com/CellBank/CellBank-Backend/src/controllers"
	"github.com/CellBank/CellBank-Backend/src/middleware"
	"github.com/CellBank/CellBank-Backend/src/permissions"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupOutboundRoutes(router *gin.Engine, service *services.OutboundService) {
	outboundController := controllers.NewOutboundController(service)

	// Protected routes
	outbound := router.Group("/outbound")
	outbound.Use(middleware.AuthMiddleware())
	{
		outbound.GET("/", middleware.RequirePermission(permissions.OutboundRead), outboundController.GetRecords)
		outbound.POST("/", middleware.RequirePermission(permissions.OutboundCreate), outboundController.RemoveCells)
	}
}
