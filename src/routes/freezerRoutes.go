package routes

import (
	"github.com/CellBank/CellBank-Backend/src/controllers"
	"github.com/CellBank/CellBank-Backend/src/middleware"
	"github.com/CellBank/CellBank-Backend/src/permissions"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupFreezerRoutes(router *gin.Engine, service *services.FreezerService) {
	freezerController := controllers.NewFreezerController(service)

	// Protected routes
	freezer := router.Group("/freezers")
	freezer.Use(middleware.AuthMiddleware())
	{
		freezer.GET("/", middleware.RequirePermission(permissions.InventoryRead), freezerController.GetAllFreezers)
		freezer.POST("/", middleware.RequirePermission(permissions.StorageManage), freezerController.CreateFreezer)
		freezer.PUT("/:id", middleware.RequirePermission(permissions.StorageManage), freezerController.UpdateFreezer)
		freezer.DELETE("/:id", middleware.RequirePermission(permissions.StorageManage), freezerController.DeleteFreezer)
	}

	locations := router.Group("/locations")
	locations.Use(middleware.AuthMiddleware())
	{
		locations.GET("/list", middleware.RequirePermission(permissions.InventoryRead), freezerController.GetLocationList)
	}
}
