package services

import (
	"fmt"

	"github.com/CellBank/CellBank-Backend/src/dtos"
	"github.com/CellBank/CellBank-Backend/src/models"
	"gorm.io/gorm"
)

// StoredCellsError refuses a location delete while stored cells remain.
type StoredCellsError struct {
	Count   int
	Message string
}

func (e *StoredCellsError) Error() string {
	return e.Message
}

type FreezerService struct {
	db *gorm.DB
}

// NewFreezerService creates a new instance of FreezerService
func NewFreezerService(db *gorm.DB) *FreezerService {
	return &FreezerService{db: db}
}

// GetAllFreezers retrieves all freezers with their racks and boxes
func (s *FreezerService) GetAllFreezers() ([]models.FreezerModel, error) {
	var freezers []models.FreezerModel
	result := s.db.
		Preload("Racks.Boxes").
		Order("created_at DESC").
		Find(&freezers)
	if result.Error != nil {
		return nil, result.Error
	}
	return freezers, nil
}

// CreateFreezer creates a new freezer record in the database
func (s *FreezerService) CreateFreezer(freezer *models.FreezerModel) (*models.FreezerModel, error) {
	result := s.db.Create(freezer)
	if result.Error != nil {
		return nil, result.Error
	}
	return freezer, nil
}

// UpdateFreezer updates an existing freezer record in the database
func (s *FreezerService) UpdateFreezer(id int, updatedData *models.FreezerModel) (*models.FreezerModel, error) {
	var freezer models.FreezerModel
	if err := s.db.First(&freezer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&freezer).Updates(updatedData).Error; err != nil {
		return nil, err
	}
	return &freezer, nil
}

// DeleteFreezer removes a freezer and its racks and boxes. The delete is
// refused while any box below the freezer still holds stored cells; removed
// cell records are purged so foreign keys do not block the delete.
func (s *FreezerService) DeleteFreezer(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var rackIds []int
		if err := tx.Model(&models.RackModel{}).Where("freezer_id = ?", id).Pluck("id", &rackIds).Error; err != nil {
			return err
		}

		if len(rackIds) > 0 {
			var boxIds []int
			if err := tx.Model(&models.BoxModel{}).Where("rack_id IN ?", rackIds).Pluck("id", &boxIds).Error; err != nil {
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
						Message: fmt.Sprintf("该冰箱下的存储位置中存在 %d 个在库细胞，请先取出所有细胞后再删除", storedCount),
					}
				}

				if err := tx.Where("box_id IN ? AND status = ?", boxIds, models.CellRemoved).
					Delete(&models.CellModel{}).Error; err != nil {
					return err
				}
				if err := tx.Where("rack_id IN ?", rackIds).Delete(&models.BoxModel{}).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("freezer_id = ?", id).Delete(&models.RackModel{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.FreezerModel{}, id).Error
	})
}

// GetLocationList returns every box as a flat location row with its storage
// path and stored-cell count, ordered by freezer name.
func (s *FreezerService) GetLocationList() ([]dtos.LocationDTO, error) {
	return locationList(s.db)
}

func locationList(db *gorm.DB) ([]dtos.LocationDTO, error) {
	var freezers []models.FreezerModel
	if err := db.
		Preload("Racks.Boxes.Cells", "status = ?", models.CellStored).
		Order("name ASC").
		Find(&freezers).Error; err != nil {
		return nil, err
	}

	locations := []dtos.LocationDTO{}
	for _, freezer := range freezers {
		for _, rack := range freezer.Racks {
			for _, box := range rack.Boxes {
				locations = append(locations, dtos.LocationDTO{
					FreezerName: freezer.Name,
					RackName:    rack.Name,
					BoxName:     box.Name,
					BoxSize:     fmt.Sprintf("%d×%d", box.Rows, box.Cols),
					StoredCount: len(box.Cells),
					Path:        fmt.Sprintf("%s → %s → %s", freezer.Name, rack.Name, box.Name),
				})
			}
		}
	}

	return locations, nil
}
