package services

import (
	"errors"
	"testing"

	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteFreezerRefusedWhileCellsStored(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	seedStoredCell(t, conn, box.Id, "HEK293", 1, 1)
	service := NewFreezerService(conn)

	var freezer models.FreezerModel
	require.NoError(t, conn.Where("name = ?", "1号冰箱").First(&freezer).Error)

	err := service.DeleteFreezer(freezer.Id)
	require.Error(t, err)

	var storedErr *StoredCellsError
	require.True(t, errors.As(err, &storedErr))
	assert.Equal(t, 1, storedErr.Count)
	assert.Equal(t, "该冰箱下的存储位置中存在 1 个在库细胞，请先取出所有细胞后再删除", err.Error())

	// Nothing was deleted.
	var count int64
	require.NoError(t, conn.Model(&models.FreezerModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteFreezerCascadesWhenEmpty(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	cell := seedStoredCell(t, conn, box.Id, "HEK293", 1, 1)
	require.NoError(t, conn.Model(&models.CellModel{}).
		Where("id = ?", cell.Id).Update("status", models.CellRemoved).Error)
	service := NewFreezerService(conn)

	var freezer models.FreezerModel
	require.NoError(t, conn.Where("name = ?", "1号冰箱").First(&freezer).Error)
	require.NoError(t, service.DeleteFreezer(freezer.Id))

	for _, model := range []interface{}{
		&models.FreezerModel{}, &models.RackModel{}, &models.BoxModel{}, &models.CellModel{},
	} {
		var count int64
		require.NoError(t, conn.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestDeleteRackRefusedWhileCellsStored(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	seedStoredCell(t, conn, box.Id, "HEK293", 1, 1)
	service := NewRackService(conn)

	err := service.DeleteRack(box.RackId)
	require.Error(t, err)
	assert.Equal(t, "该架子下的盒子中存在 1 个在库细胞，请先取出所有细胞后再删除", err.Error())
}

func TestDeleteBoxRefusedWhileCellsStored(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	seedStoredCell(t, conn, box.Id, "HEK293", 1, 1)
	service := NewBoxService(conn)

	err := service.DeleteBox(box.Id)
	require.Error(t, err)
	assert.Equal(t, "该盒子中存在 1 个在库细胞，请先取出所有细胞后再删除", err.Error())
}

func TestCreateBoxDefaultsGridSize(t *testing.T) {
	conn := newTestDB(t)
	existing := seedHierarchy(t, conn)
	service := NewBoxService(conn)

	box, err := service.CreateBox(&models.BoxModel{RackId: existing.RackId, Name: "盒子2"})
	require.NoError(t, err)
	assert.Equal(t, 10, box.Rows)
	assert.Equal(t, 10, box.Cols)
	assert.Equal(t, "A架", box.Rack.Name)
	assert.Equal(t, "1号冰箱", box.Rack.Freezer.Name)
}

func TestGetLocationList(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	seedStoredCell(t, conn, box.Id, "HEK293", 1, 1)
	seedStoredCell(t, conn, box.Id, "Vero", 1, 2)
	service := NewFreezerService(conn)

	locations, err := service.GetLocationList()
	require.NoError(t, err)
	require.Len(t, locations, 1)

	loc := locations[0]
	assert.Equal(t, "1号冰箱", loc.FreezerName)
	assert.Equal(t, "A架", loc.RackName)
	assert.Equal(t, "盒子1", loc.BoxName)
	assert.Equal(t, "10×10", loc.BoxSize)
	assert.Equal(t, 2, loc.StoredCount)
	assert.Equal(t, "1号冰箱 → A架 → 盒子1", loc.Path)
}
