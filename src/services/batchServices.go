package services

import (
	"sort"
	"strings"

	"github.com/CellBank/CellBank-Backend/src/dtos"
	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/CellBank/CellBank-Backend/src/utils"
	"gorm.io/gorm"
)

type BatchService struct {
	db *gorm.DB
}

// NewBatchService creates a new instance of BatchService
func NewBatchService(db *gorm.DB) *BatchService {
	return &BatchService{db: db}
}

// ListBatches returns one page of the inventory: batches with their cells'
// locations, derived status (stored / partial / removed) and overview
// strings. Status filtering needs the per-batch cell counts, so batches are
// fetched first and filtered and paginated in memory.
func (s *BatchService) ListBatches(search, status, cellType string, page, pageSize int) (*dtos.BatchListDTO, error) {
	query := s.db.Model(&models.CellBatchModel{})

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR cell_type LIKE ? OR batch_code LIKE ?", like, like, like)
	}
	if cellType != "" && cellType != "all" {
		query = query.Where("cell_type = ?", cellType)
	}

	var batches []models.CellBatchModel
	err := query.
		Preload("Cells", func(db *gorm.DB) *gorm.DB {
			return db.Order("position_row ASC, position_col ASC")
		}).
		Preload("Cells.Box.Rack.Freezer").
		Order("created_at DESC").
		Find(&batches).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dtos.BatchSummaryDTO, 0, len(batches))
	for _, batch := range batches {
		stored := 0
		for _, cell := range batch.Cells {
			if cell.Status == models.CellStored {
				stored++
			}
		}
		removed := len(batch.Cells) - stored

		batchStatus := "partial"
		if stored == 0 {
			batchStatus = "removed"
		} else if removed == 0 {
			batchStatus = "stored"
		}

		seen := map[string]bool{}
		locations := []string{}
		positions := make([]string, 0, len(batch.Cells))
		for _, cell := range batch.Cells {
			path := cell.Box.Rack.Freezer.Name + "/" + cell.Box.Rack.Name + "/" + cell.Box.Name
			if !seen[path] {
				seen[path] = true
				locations = append(locations, path)
			}
			positions = append(positions, utils.FormatPosition(cell.PositionRow, cell.PositionCol))
		}

		summaries = append(summaries, dtos.BatchSummaryDTO{
			CellBatchModel:    batch,
			StoredCount:       stored,
			RemovedCount:      removed,
			BatchStatus:       batchStatus,
			LocationOverview:  strings.Join(locations, "; "),
			PositionsOverview: strings.Join(positions, ", "),
		})
	}

	if status != "" && status != "all" {
		filtered := summaries[:0]
		for _, summary := range summaries {
			if summary.BatchStatus == status {
				filtered = append(filtered, summary)
			}
		}
		summaries = filtered
	}

	total := len(summaries)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &dtos.BatchListDTO{
		Batches:  summaries[start:end],
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetCellTypes returns the distinct cell types of all batches, sorted.
func (s *BatchService) GetCellTypes() ([]string, error) {
	var cellTypes []string
	err := s.db.Model(&models.CellBatchModel{}).
		Distinct("cell_type").
		Pluck("cell_type", &cellTypes).Error
	if err != nil {
		return nil, err
	}

	filtered := cellTypes[:0]
	for _, cellType := range cellTypes {
		if cellType != "" {
			filtered = append(filtered, cellType)
		}
	}
	sort.Strings(filtered)
	return filtered, nil
}
