package db

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		return nil, err
	}

	// Get DB_DSN from environment
	dsn := os.Getenv("DB_DSN")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Println("Error connecting to database:", err)
		return nil, err
	}

	log.Println("CellBank DB connected successfully!")

	return db, nil
}

// EnsureOccupancyIndex creates the partial unique index that guarantees at
// most one stored cell per (box, row, col) slot. The application re-checks
// occupancy before inserting, but only this index closes the race between
// concurrent inbound requests.
func EnsureOccupancyIndex(db *gorm.DB) error {
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_cells_stored_position
		 ON cells (box_id, position_row, position_col)
		 WHERE status = 'stored'`,
	).Error
}
