package routes

import (
	"github.com/CellBank/CellBank-Backend/src/controllers"
	"github.com/CellBank/CellBank-Backend/src/middleware"
	"github.com/CellBank/CellBank-Backend/src/permissions"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupRackRoutes(router *gin.Engine, service *services.RackService) {
	rackController := controllers.NewRackController(service)

	// Protected routes
	rack := router.Group("/racks")
	rack.Use(middleware.AuthMiddleware())
	{
		rack.POST("/", middleware.RequirePermission(permissions.StorageManage), rackController.CreateRack)
		rack.PUT("/:id", middleware.RequirePermission(permissions.StorageManage), rackController.UpdateRack)
		rack.DELETE("/:id", middleware.RequirePermission(permissions.StorageManage), rackController.DeleteRack)
	}
}
