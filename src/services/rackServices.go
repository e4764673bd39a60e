package services

import (
	"fmt"

	"github.com/CellBank/CellBank-Backend/src/models"
	"gorm.io/gorm"
)

type RackService struct {
	db *gorm.DB
}

// NewRackService creates a new instance of RackService
func NewRackService(db *gorm.DB) *RackService {
	return &RackService{db: db}
}

// CreateRack creates a new rack record in the database
func (s *RackService) CreateRack(rack *models.RackModel) (*models.RackModel, error) {
	if err := s.db.Create(rack).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Freezer").First(rack, rack.Id).Error; err != nil {
		return nil, err
	}
	return rack, nil
}

// UpdateRack updates an existing rack record in the database
func (s *RackService) UpdateRack(id int, updatedData *models.RackModel) (*models.RackModel, error) {
	var rack models.RackModel
	if err := s.db.First(&rack, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&rack).Updates(updatedData).Error; err != nil {
		return nil, err
	}
	return &rack, nil
}

// DeleteRack removes a rack and its boxes; refused while stored cells remain.
func (s *RackService) DeleteRack(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var boxIds []int
		if err := tx.Model(&models.BoxModel{}).Where("rack_id = ?", id).Pluck("id", &boxIds).Error; err != nil {
			return err
		}

		if len(boxIds) > 0 {
			var storedCount int64
			if err := tx.Model(&models.CellModel{}).
				Where("box_id IN ? AND status = ?", boxIds, models.CellStored).
				Count(&storedCount).Error; err != nil {
				return err
			}
			if storedCount > 0 {
				return &StoredCellsError{
					Count:   int(storedCount),
					Message: fmt.Sprintf("该架子下的盒子中存在 %d 个在库细胞，请先取出所有细胞后再删除", storedCount),
				}
			}

			if err := tx.Where("box_id IN ? AND status = ?", boxIds, models.CellRemoved).
				Delete(&models.CellModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("rack_id = ?", id).Delete(&models.BoxModel{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.RackModel{}, id).Error
	})
}
