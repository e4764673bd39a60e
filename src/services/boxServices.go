package services

import (
	"fmt"

	"github.com/CellBank/CellBank-Backend/src/models"
	"gorm.io/gorm"
)

type BoxService struct {
	db *gorm.DB
}

// NewBoxService creates a new instance of BoxService
func NewBoxService(db *gorm.DB) *BoxService {
	return &BoxService{db: db}
}

// CreateBox creates a new box record; grid defaults to 10×10
func (s *BoxService) CreateBox(box *models.BoxModel) (*models.BoxModel, error) {
	if box.Rows <= 0 {
		box.Rows = 10
	}
	if box.Cols <= 0 {
		box.Cols = 10
	}
	if err := s.db.Create(box).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Rack.Freezer").First(box, box.Id).Error; err != nil {
		return nil, err
	}
	return box, nil
}

// GetBoxByID retrieves a box with its location path and stored cells
func (s *BoxService) GetBoxByID(id int) (*models.BoxModel, error) {
	var box models.BoxModel
	result := s.db.
		Preload("Rack.Freezer").
		Preload("Cells", "status = ?", models.CellStored).
		Preload("Cells.Batch").
		First(&box, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &box, nil
}

// UpdateBox updates an existing box record in the database
func (s *BoxService) UpdateBox(id int, updatedData *models.BoxModel) (*models.BoxModel, error) {
	var box models.BoxModel
	if err := s.db.First(&box, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&box).Updates(updatedData).Error; err != nil {
		return nil, err
	}
	return &box, nil
}

// DeleteBox removes a box; refused while it holds stored cells. Records of
// already removed cells are purged first.
func (s *BoxService) DeleteBox(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var storedCount int64
		if err := tx.Model(&models.CellModel{}).
			Where("box_id = ? AND status = ?", id, models.CellStored).
			Count(&storedCount).Error; err != nil {
			return err
		}
		if storedCount > 0 {
			return &StoredCellsError{
				Count:   int(storedCount),
				Message: fmt.Sprintf("该盒子中存在 %d 个在库细胞，请先取出所有细胞后再删除", storedCount),
			}
		}

		if err := tx.Where("box_id = ? AND status = ?", id, models.CellRemoved).
			Delete(&models.CellModel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.BoxModel{}, id).Error
	})
}
