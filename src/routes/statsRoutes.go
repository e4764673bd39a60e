package routes

import (
	"github.com/CellBank/CellBank-Backend/src/controllers"
	"github.com/CellBank/CellBank-Backend/src/middleware"
	"github.com/CellBank/CellBank-Backend/src/permissions"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupStatsRoutes(router *gin.Engine, service *services.StatsService) {
	statsController := controllers.NewStatsController(service)

	// Protected routes
	stats := router.Group("/stats")
	stats.Use(middleware.AuthMiddleware())
	{
		stats.GET("/", middleware.RequirePermission(permissions.ReportsRead), statsController.GetOverview)
		stats.GET("/time-range", middleware.RequirePermission(permissions.ReportsRead), statsController.GetTimeRange)
	}
}
