package services

import (
	"testing"

	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveCells(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	first := seedStoredCell(t, conn, box.Id, "HEK293", 1, 1)
	second := seedStoredCell(t, conn, box.Id, "Vero", 1, 2)
	service := NewOutboundService(conn)

	count, err := service.RemoveCells([]int{first.Id, second.Id}, "实验用", "李老师")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var removed int64
	require.NoError(t, conn.Model(&models.CellModel{}).
		Where("status = ?", models.CellRemoved).Count(&removed).Error)
	assert.EqualValues(t, 2, removed)

	// One log entry per cell, quantity 1.
	var logs []models.OperationLogModel
	require.NoError(t, conn.Where("operation = ?", models.OperationOutbound).Find(&logs).Error)
	require.Len(t, logs, 2)
	for _, entry := range logs {
		assert.Equal(t, 1, entry.Quantity)
		require.NotNil(t, entry.CellId)
		require.NotNil(t, entry.Reason)
		assert.Equal(t, "实验用", *entry.Reason)
		require.NotNil(t, entry.Operator)
		assert.Equal(t, "李老师", *entry.Operator)
	}
}

func TestRemoveCellsSecondAttemptRollsBack(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	cell := seedStoredCell(t, conn, box.Id, "HEK293", 1, 1)
	other := seedStoredCell(t, conn, box.Id, "Vero", 1, 2)
	service := NewOutboundService(conn)

	_, err := service.RemoveCells([]int{cell.Id}, "", "")
	require.NoError(t, err)

	// The already removed cell poisons the whole request; the still stored
	// one must not be touched.
	_, err = service.RemoveCells([]int{cell.Id, other.Id}, "", "")
	require.Error(t, err)
	assert.Equal(t, "部分细胞已被取出或不存在", err.Error())

	var fresh models.CellModel
	require.NoError(t, conn.First(&fresh, other.Id).Error)
	assert.Equal(t, models.CellStored, fresh.Status)

	var logCount int64
	require.NoError(t, conn.Model(&models.OperationLogModel{}).
		Where("operation = ?", models.OperationOutbound).Count(&logCount).Error)
	assert.EqualValues(t, 1, logCount)
}

func TestRemoveCellsUnknownId(t *testing.T) {
	conn := newTestDB(t)
	seedHierarchy(t, conn)
	service := NewOutboundService(conn)

	_, err := service.RemoveCells([]int{9999}, "", "")
	require.Error(t, err)
	assert.Equal(t, "部分细胞已被取出或不存在", err.Error())
}

func TestRemoveCellsEmptySelection(t *testing.T) {
	conn := newTestDB(t)
	service := NewOutboundService(conn)

	_, err := service.RemoveCells(nil, "", "")
	require.Error(t, err)
	assert.Equal(t, "请选择要取出的细胞", err.Error())
}

func TestListRecords(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	cell := seedStoredCell(t, conn, box.Id, "HEK293", 2, 3)
	service := NewOutboundService(conn)

	_, err := service.RemoveCells([]int{cell.Id}, "质检", "王工")
	require.NoError(t, err)

	records, total, err := service.ListRecords("", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "HEK293", record.CellName)
	assert.Equal(t, "B3", record.Position)
	assert.Equal(t, "1号冰箱 → A架 → 盒子1", record.Location)
	assert.Equal(t, "质检", record.Reason)
	assert.Equal(t, "王工", record.Operator)

	// Search narrows by batch name or cell type.
	_, total, err = service.ListRecords("hek", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, total, err = service.ListRecords("nothing", 1, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
}
