package services

import (
	"sort"
	"time"

	"github.com/CellBank/CellBank-Backend/src/dtos"
	"github.com/CellBank/CellBank-Backend/src/models"
	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Overview builds the dashboard statistics: base counts, this-month
// activity, stored cells by type, the 6-month trend and per-freezer /
// per-operator monthly breakdowns.
func (s *StatsService) Overview() (*dtos.StatsOverviewDTO, error) {
	overview := &dtos.StatsOverviewDTO{}

	var freezerCount, userCount, batchCount, storedCells, removedCells int64
	if err := s.db.Model(&models.FreezerModel{}).Count(&freezerCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.UserModel{}).Count(&userCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.CellBatchModel{}).Count(&batchCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.CellModel{}).Where("status = ?", models.CellStored).Count(&storedCells).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.CellModel{}).Where("status = ?", models.CellRemoved).Count(&removedCells).Error; err != nil {
		return nil, err
	}

	overview.FreezerCount = int(freezerCount)
	overview.UserCount = int(userCount)
	overview.BatchCount = int(batchCount)
	overview.StoredCells = int(storedCells)
	overview.RemovedCells = int(removedCells)
	overview.TotalCells = int(storedCells + removedCells)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// This month's inbound counts tubes (batch quantities), not batches.
	var inboundSum int64
	if err := s.db.Model(&models.CellBatchModel{}).
		Where("created_at >= ?", monthStart).
		Select("COALESCE(SUM(total_quantity), 0)").
		Scan(&inboundSum).Error; err != nil {
		return nil, err
	}
	overview.InboundThisMonth = int(inboundSum)

	var outboundSum int64
	if err := s.db.Model(&models.OperationLogModel{}).
		Where("operation = ? AND created_at >= ?", models.OperationOutbound, monthStart).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&outboundSum).Error; err != nil {
		return nil, err
	}
	overview.OutboundThisMonth = int(outboundSum)

	cellTypeStats, err := s.storedCellsByType()
	if err != nil {
		return nil, err
	}
	overview.CellTypeStats = cellTypeStats

	monthlyInbound, monthlyOutbound, err := s.monthlyTrend(now, 6)
	if err != nil {
		return nil, err
	}
	overview.MonthlyInbound = monthlyInbound
	overview.MonthlyOutbound = monthlyOutbound

	freezerStats, userStats, err := s.activityBetween(monthStart, now)
	if err != nil {
		return nil, err
	}
	overview.FreezerMonthStats = freezerStats
	overview.UserMonthStats = userStats

	return overview, nil
}

// TimeRange reports per-freezer and per-operator inbound/outbound activity
// within [start, end]; end is extended to the last second of its day.
func (s *StatsService) TimeRange(start, end time.Time) (*dtos.TimeRangeStatsDTO, error) {
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())

	freezerStats, userStats, err := s.activityBetween(start, end)
	if err != nil {
		return nil, err
	}

	return &dtos.TimeRangeStatsDTO{
		StartDate:    start.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
		FreezerStats: freezerStats,
		UserStats:    userStats,
	}, nil
}

// storedCellsByType counts stored cells grouped by their batch's cell type,
// largest group first.
func (s *StatsService) storedCellsByType() ([]dtos.CellTypeStatDTO, error) {
	var stats []dtos.CellTypeStatDTO
	err := s.db.Model(&models.CellModel{}).
		Select("cell_batches.cell_type AS type, COUNT(*) AS count").
		Joins("JOIN cell_batches ON cell_batches.id = cells.batch_id").
		Where("cells.status = ?", models.CellStored).
		Group("cell_batches.cell_type").
		Order("count DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []dtos.CellTypeStatDTO{}
	}
	return stats, nil
}

// monthlyTrend counts inbound batches and outbound operations per month for
// the trailing `months` months, oldest first.
func (s *StatsService) monthlyTrend(now time.Time, months int) ([]dtos.MonthCountDTO, []dtos.MonthCountDTO, error) {
	inbound := make([]dtos.MonthCountDTO, 0, months)
	outbound := make([]dtos.MonthCountDTO, 0, months)

	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)
		label := monthStart.Format("2006-01")

		var inboundCount int64
		if err := s.db.Model(&models.CellBatchModel{}).
			Where("created_at >= ? AND created_at <= ?", monthStart, monthEnd).
			Count(&inboundCount).Error; err != nil {
			return nil, nil, err
		}

		var outboundCount int64
		if err := s.db.Model(&models.OperationLogModel{}).
			Where("operation = ? AND created_at >= ? AND created_at <= ?", models.OperationOutbound, monthStart, monthEnd).
			Count(&outboundCount).Error; err != nil {
			return nil, nil, err
		}

		inbound = append(inbound, dtos.MonthCountDTO{Month: label, Count: int(inboundCount)})
		outbound = append(outbound, dtos.MonthCountDTO{Month: label, Count: int(outboundCount)})
	}

	return inbound, outbound, nil
}

// activityBetween aggregates inbound and outbound tube counts per freezer
// and per operator within [start, end].
func (s *StatsService) activityBetween(start, end time.Time) ([]dtos.FreezerActivityDTO, []dtos.UserActivityDTO, error) {
	// Cells stored in the window, located through box -> rack -> freezer.
	var inboundCells []models.CellModel
	err := s.db.
		Select("cells.*").
		Joins("JOIN cell_batches ON cell_batches.id = cells.batch_id").
		Where("cell_batches.created_at >= ? AND cell_batches.created_at <= ?", start, end).
		Preload("Box.Rack.Freezer").
		Find(&inboundCells).Error
	if err != nil {
		return nil, nil, err
	}

	var outboundLogs []models.OperationLogModel
	err = s.db.
		Where("operation = ? AND created_at >= ? AND created_at <= ?", models.OperationOutbound, start, end).
		Preload("Cell.Box.Rack.Freezer").
		Find(&outboundLogs).Error
	if err != nil {
		return nil, nil, err
	}

	freezerInbound := map[string]int{}
	for _, cell := range inboundCells {
		freezerInbound[cell.Box.Rack.Freezer.Name]++
	}
	freezerOutbound := map[string]int{}
	for _, log := range outboundLogs {
		if log.Cell != nil {
			freezerOutbound[log.Cell.Box.Rack.Freezer.Name] += log.Quantity
		}
	}

	var freezers []models.FreezerModel
	if err := s.db.Order("name ASC").Find(&freezers).Error; err != nil {
		return nil, nil, err
	}

	freezerStats := []dtos.FreezerActivityDTO{}
	for _, freezer := range freezers {
		in := freezerInbound[freezer.Name]
		out := freezerOutbound[freezer.Name]
		if in == 0 && out == 0 {
			continue
		}
		freezerStats = append(freezerStats, dtos.FreezerActivityDTO{
			FreezerName: freezer.Name,
			Inbound:     in,
			Outbound:    out,
		})
	}

	// Per-operator tube counts from batches and outbound logs.
	var batches []models.CellBatchModel
	err = s.db.
		Where("created_at >= ? AND created_at <= ? AND operator IS NOT NULL", start, end).
		Find(&batches).Error
	if err != nil {
		return nil, nil, err
	}

	userInbound := map[string]int{}
	for _, batch := range batches {
		if batch.Operator != nil && *batch.Operator != "" {
			userInbound[*batch.Operator] += batch.TotalQuantity
		}
	}
	userOutbound := map[string]int{}
	for _, log := range outboundLogs {
		if log.Operator != nil && *log.Operator != "" {
			userOutbound[*log.Operator] += log.Quantity
		}
	}

	names := map[string]bool{}
	for name := range userInbound {
		names[name] = true
	}
	for name := range userOutbound {
		names[name] = true
	}

	userStats := make([]dtos.UserActivityDTO, 0, len(names))
	for name := range names {
		userStats = append(userStats, dtos.UserActivityDTO{
			UserName: name,
			Inbound:  userInbound[name],
			Outbound: userOutbound[name],
		})
	}
	sort.SliceStable(userStats, func(i, j int) bool {
		return userStats[i].Inbound+userStats[i].Outbound > userStats[j].Inbound+userStats[j].Outbound
	})

	return freezerStats, userStats, nil
}
