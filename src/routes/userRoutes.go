package routes

import (
	"github.com/CellBank/CellBank-Backend/src/controllers"
	"github.com/CellBank/CellBank-Backend/src/middleware"
	"github.com/CellBank/CellBank-Backend/src/permissions"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", userController.AuthenticateUser)

	// Protected routes
	user := router.Group("/users")
	user.Use(middleware.AuthMiddleware())
	{
		user.POST("/change-password", userController.ChangePassword)

		user.GET("/", middleware.RequirePermission(permissions.UsersManage), userController.GetAllUsers)
		user.GET("/:id", middleware.RequirePermission(permissions.UsersManage), userController.GetUserByID)
		user.POST("/", middleware.RequirePermission(permissions.UsersManage), userController.CreateUser)
		user.PUT("/:id", middleware.RequirePermission(permissions.UsersManage), userController.UpdateUser)
		user.DELETE("/:id", middleware.RequirePermission(permissions.UsersManage), userController.DeleteUser)
	}
}
