package seed

import (
	"log"

	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/CellBank/CellBank-Backend/src/permissions"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Users
	var user models.UserModel
	result := db.Where("email = ?", "admin@example.com").First(&user)
	if result.Error == nil {
		log.Println("User 'admin@example.com' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Name:     "管理员",
			Email:    "admin@example.com",
			Password: string(hashedPassword),
			Role:     string(permissions.RoleAdmin),
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Println("User 'admin@example.com' created")
		}
	}

	// Storage hierarchy seeding - one freezer with a rack and a 10x10 box
	var freezer models.FreezerModel
	result = db.Where("name = ?", "1号冰箱").First(&freezer)
	if result.Error == nil {
		log.Println("Freezer '1号冰箱' already exists")
		return
	}

	location := "实验室A区"
	temperature := "-80°C"
	freezer = models.FreezerModel{
		Name:        "1号冰箱",
		Location:    &location,
		Temperature: &temperature,
	}
	if err := db.Create(&freezer).Error; err != nil {
		log.Printf("Failed to create freezer: %v\n", err)
		return
	}

	rack := models.RackModel{
		FreezerId: freezer.Id,
		Name:      "A架",
	}
	if err := db.Create(&rack).Error; err != nil {
		log.Printf("Failed to create rack: %v\n", err)
		return
	}

	box := models.BoxModel{
		RackId: rack.Id,
		Name:   "盒子1",
		Rows:   10,
		Cols:   10,
	}
	if err := db.Create(&box).Error; err != nil {
		log.Printf("Failed to create box: %v\n", err)
		return
	}

	log.Println("Storage hierarchy '1号冰箱 / A架 / 盒子1' created")
}
