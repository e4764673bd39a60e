package routes

import (
	"github.com/CellBank/CellBank-Backend/src/controllers"
	"github.com/CellBank/CellBank-Backend/src/middleware"
	"github.com/CellBank/CellBank-Backend/src/permissions"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBoxRoutes(router *gin.Engine, service *services.BoxService) {
	boxController := controllers.NewBoxController(service)

	// Protected routes
	box := router.Group("/boxes")
	box.Use(middleware.AuthMiddleware())
	{
		box.GET("/:id", middleware.RequirePermission(permissions.InventoryRead), boxController.GetBoxByID)
		box.POST("/", middleware.RequirePermission(permissions.StorageManage), boxController.CreateBox)
		box.PUT("/:id", middleware.RequirePermission(permissions.StorageManage), boxController.UpdateBox)
		box.DELETE("/:id", middleware.RequirePermission(permissions.StorageManage), boxController.DeleteBox)
	}
}
