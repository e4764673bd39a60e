package main

import (
	"log"
	"os"

	"github.com/CellBank/CellBank-Backend/src/db"
	"github.com/CellBank/CellBank-Backend/src/middleware"
	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/CellBank/CellBank-Backend/src/routes"
	"github.com/CellBank/CellBank-Backend/src/seed"
	"github.com/CellBank/CellBank-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	conn, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := conn.AutoMigrate(
		&models.UserModel{},
		&models.FreezerModel{},
		&models.RackModel{},
		&models.BoxModel{},
		&models.CellBatchModel{},
		&models.CellModel{},
		&models.OperationLogModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// The occupancy index backs the one-cell-per-slot guarantee and cannot be
	// expressed through gorm tags (it is partial on status).
	if err := db.EnsureOccupancyIndex(conn); err != nil {
		log.Fatalf("Error creating occupancy index: %v\n", err)
	}

	// JWT secret setup
	middleware.SetSecretKey(os.Getenv("JWT_SECRET"))

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	userService := services.NewUserService(conn)
	freezerService := services.NewFreezerService(conn)
	rackService := services.NewRackService(conn)
	boxService := services.NewBoxService(conn)
	batchService := services.NewBatchService(conn)
	inboundService := services.NewInboundService(conn)
	outboundService := services.NewOutboundService(conn)
	statsService := services.NewStatsService(conn)

	// Routes setup
	routes.SetupUserRoutes(router, userService)
	routes.SetupFreezerRoutes(router, freezerService)
	routes.SetupRackRoutes(router, rackService)
	routes.SetupBoxRoutes(router, boxService)
	routes.SetupCellRoutes(router, batchService, inboundService)
	routes.SetupInboundRoutes(router, inboundService)
	routes.SetupOutboundRoutes(router, outboundService)
	routes.SetupStatsRoutes(router, statsService)

	// Seed initial data
	seed.Seed(conn)

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
