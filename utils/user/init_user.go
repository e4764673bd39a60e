package main

import (
	"flag"
	"log"
	"os"

	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/CellBank/CellBank-Backend/src/permissions"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "admin@example.com", "admin account email")
	name := flag.String("name", "管理员", "admin display name")
	password := flag.String("password", "admin123", "admin account password")
	flag.Parse()

	dsn := os.Getenv("DB_DSN")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate schema if not exists
	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		log.Fatalf("failed to migrate user model: %v", err)
	}

	var user models.UserModel
	result := db.Where("email = ?", *email).First(&user)
	if result.Error == nil {
		log.Printf("User '%s' already exists\n", *email)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	newUser := models.UserModel{
		Email:    *email,
		Name:     *name,
		Password: string(hashedPassword),
		Role:     string(permissions.RoleAdmin),
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.Printf("User '%s' created\n", *email)
}
