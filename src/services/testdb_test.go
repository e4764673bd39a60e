package services

import (
	"testing"

	"github.com/CellBank/CellBank-Backend/src/db"
	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema, including the
// partial unique occupancy index.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.UserModel{},
		&models.FreezerModel{},
		&models.RackModel{},
		&models.BoxModel{},
		&models.CellBatchModel{},
		&models.CellModel{},
		&models.OperationLogModel{},
	))
	require.NoError(t, db.EnsureOccupancyIndex(conn))

	return conn
}

// seedHierarchy creates 1号冰箱 / A架 / 盒子1 (10×10) and returns the box.
func seedHierarchy(t *testing.T, conn *gorm.DB) models.BoxModel {
	t.Helper()

	freezer := models.FreezerModel{Name: "1号冰箱"}
	require.NoError(t, conn.Create(&freezer).Error)

	rack := models.RackModel{FreezerId: freezer.Id, Name: "A架"}
	require.NoError(t, conn.Create(&rack).Error)

	box := models.BoxModel{RackId: rack.Id, Name: "盒子1", Rows: 10, Cols: 10}
	require.NoError(t, conn.Create(&box).Error)

	return box
}

// seedStoredCell places one stored cell of a fresh batch at the given slot.
func seedStoredCell(t *testing.T, conn *gorm.DB, boxId int, batchName string, row, col int) models.CellModel {
	t.Helper()

	batch := models.CellBatchModel{
		Name:          batchName,
		CellType:      "贴壁细胞",
		Passage:       "P1",
		TotalQuantity: 1,
	}
	require.NoError(t, conn.Create(&batch).Error)

	cell := models.CellModel{
		PositionRow: row,
		PositionCol: col,
		Status:      models.CellStored,
		BatchId:     batch.Id,
		BoxId:       boxId,
	}
	require.NoError(t, conn.Create(&cell).Error)

	return cell
}
