package services

import (
	"testing"
	"time"

	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverview(t *testing.T) {
	conn := newTestDB(t)
	seedHierarchy(t, conn)
	inbound := NewInboundService(conn)
	outbound := NewOutboundService(conn)
	service := NewStatsService(conn)

	row := validRow(2)
	row.Operator = "张医生"
	batch, err := inbound.CommitRow(row)
	require.NoError(t, err)

	var cell models.CellModel
	require.NoError(t, conn.Where("batch_id = ?", batch.Id).First(&cell).Error)
	_, err = outbound.RemoveCells([]int{cell.Id}, "实验用", "李老师")
	require.NoError(t, err)

	overview, err := service.Overview()
	require.NoError(t, err)

	assert.Equal(t, 1, overview.FreezerCount)
	assert.Equal(t, 1, overview.BatchCount)
	assert.Equal(t, 1, overview.StoredCells)
	assert.Equal(t, 1, overview.RemovedCells)
	assert.Equal(t, 2, overview.TotalCells)
	assert.Equal(t, 2, overview.InboundThisMonth)
	assert.Equal(t, 1, overview.OutboundThisMonth)

	require.Len(t, overview.CellTypeStats, 1)
	assert.Equal(t, "贴壁细胞", overview.CellTypeStats[0].Type)
	assert.Equal(t, 1, overview.CellTypeStats[0].Count)

	require.Len(t, overview.MonthlyInbound, 6)
	require.Len(t, overview.MonthlyOutbound, 6)
	assert.Equal(t, 1, overview.MonthlyInbound[5].Count)
	assert.Equal(t, 1, overview.MonthlyOutbound[5].Count)

	require.Len(t, overview.FreezerMonthStats, 1)
	assert.Equal(t, "1号冰箱", overview.FreezerMonthStats[0].FreezerName)
	assert.Equal(t, 2, overview.FreezerMonthStats[0].Inbound)
	assert.Equal(t, 1, overview.FreezerMonthStats[0].Outbound)

	require.Len(t, overview.UserMonthStats, 2)
	names := []string{overview.UserMonthStats[0].UserName, overview.UserMonthStats[1].UserName}
	assert.ElementsMatch(t, []string{"张医生", "李老师"}, names)
	// Sorted by total activity, the inbound operator comes first.
	assert.Equal(t, "张医生", overview.UserMonthStats[0].UserName)
}

func TestTimeRange(t *testing.T) {
	conn := newTestDB(t)
	seedHierarchy(t, conn)
	inbound := NewInboundService(conn)
	service := NewStatsService(conn)

	row := validRow(2)
	row.Operator = "张医生"
	_, err := inbound.CommitRow(row)
	require.NoError(t, err)

	today := time.Now()
	stats, err := service.TimeRange(today.AddDate(0, 0, -1), today)
	require.NoError(t, err)

	require.Len(t, stats.FreezerStats, 1)
	assert.Equal(t, 2, stats.FreezerStats[0].Inbound)
	require.Len(t, stats.UserStats, 1)
	assert.Equal(t, "张医生", stats.UserStats[0].UserName)
	assert.Equal(t, 2, stats.UserStats[0].Inbound)

	// A window in the past sees nothing.
	empty, err := service.TimeRange(today.AddDate(-1, 0, 0), today.AddDate(0, -6, 0))
	require.NoError(t, err)
	assert.Empty(t, empty.FreezerStats)
	assert.Empty(t, empty.UserStats)
}
