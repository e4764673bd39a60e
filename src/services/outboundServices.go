package services

import (
	"errors"
	"strings"

	"github.com/CellBank/CellBank-Backend/src/dtos"
	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/CellBank/CellBank-Backend/src/utils"
	"gorm.io/gorm"
)

type OutboundService struct {
	db *gorm.DB
}

// NewOutboundService creates a new instance of OutboundService
func NewOutboundService(db *gorm.DB) *OutboundService {
	return &OutboundService{db: db}
}

// RemoveCells flips the given stored cells to removed and writes one
// outbound log entry per cell. The status flip is a single conditional
// update; if fewer rows change than were requested (a cell was missing or
// already removed, possibly by a concurrent request) the whole transaction
// rolls back with no mutation.
func (s *OutboundService) RemoveCells(cellIds []int, reason, operator string) (int, error) {
	if len(cellIds) == 0 {
		return 0, errors.New("请选择要取出的细胞")
	}

	var count int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cells []models.CellModel
		if err := tx.Where("id IN ? AND status = ?", cellIds, models.CellStored).Find(&cells).Error; err != nil {
			return err
		}

		result := tx.Model(&models.CellModel{}).
			Where("id IN ? AND status = ?", cellIds, models.CellStored).
			Update("status", models.CellRemoved)
		if result.Error != nil {
			return result.Error
		}
		if int(result.RowsAffected) != len(cellIds) {
			return errors.New("部分细胞已被取出或不存在")
		}

		remark := "细胞取出"
		logs := make([]models.OperationLogModel, 0, len(cells))
		for _, cell := range cells {
			cellId := cell.Id
			batchId := cell.BatchId
			logs = append(logs, models.OperationLogModel{
				Operation: models.OperationOutbound,
				Quantity:  1,
				CellId:    &cellId,
				BatchId:   &batchId,
				Reason:    optionalString(reason),
				Operator:  optionalString(operator),
				Remark:    &remark,
			})
		}
		if err := tx.Create(&logs).Error; err != nil {
			return err
		}

		count = len(cells)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ListRecords returns outbound history entries, newest first, with the
// cell's batch and location context resolved into display fields.
func (s *OutboundService) ListRecords(search string, page, pageSize int) ([]dtos.OutboundRecordDTO, int, error) {
	var logs []models.OperationLogModel
	err := s.db.
		Where("operation = ?", models.OperationOutbound).
		Preload("Cell.Batch").
		Preload("Cell.Box.Rack.Freezer").
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := logs[:0]
		for _, log := range logs {
			if log.Cell == nil {
				continue
			}
			batch := log.Cell.Batch
			if strings.Contains(strings.ToLower(batch.Name), needle) ||
				strings.Contains(strings.ToLower(batch.CellType), needle) {
				filtered = append(filtered, log)
			}
		}
		logs = filtered
	}

	total := len(logs)

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
	logs = logs[start:end]

	records := make([]dtos.OutboundRecordDTO, 0, len(logs))
	for _, log := range logs {
		record := dtos.OutboundRecordDTO{
			Id:        log.Id,
			CreatedAt: log.CreatedAt.Format("2006-01-02 15:04:05"),
			CellName:  "-",
			CellType:  "-",
			Passage:   "-",
			Position:  "-",
			Location:  "-",
			Reason:    "-",
			Operator:  "-",
		}
		if log.Cell != nil {
			record.CellName = log.Cell.Batch.Name
			record.CellType = log.Cell.Batch.CellType
			record.Passage = log.Cell.Batch.Passage
			record.Position = utils.FormatPosition(log.Cell.PositionRow, log.Cell.PositionCol)
			record.Location = log.Cell.Box.Rack.Freezer.Name + " → " + log.Cell.Box.Rack.Name + " → " + log.Cell.Box.Name
		}
		if log.Reason != nil && *log.Reason != "" {
			record.Reason = *log.Reason
		}
		if log.Operator != nil && *log.Operator != "" {
			record.Operator = *log.Operator
		}
		records = append(records, record)
	}

	return records, total, nil
}
