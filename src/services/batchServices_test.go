package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBatches(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	seedStoredCell(t, conn, box.Id, "HEK293", 1, 1)
	vero := seedStoredCell(t, conn, box.Id, "Vero", 2, 2)
	service := NewBatchService(conn)

	list, err := service.ListBatches("", "all", "all", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Batches, 2)

	for _, summary := range list.Batches {
		assert.Equal(t, "stored", summary.BatchStatus)
		assert.Equal(t, 1, summary.StoredCount)
		assert.Zero(t, summary.RemovedCount)
		assert.Equal(t, "1号冰箱/A架/盒子1", summary.LocationOverview)
	}

	// Outbound flips the derived status to removed.
	outbound := NewOutboundService(conn)
	_, err = outbound.RemoveCells([]int{vero.Id}, "", "")
	require.NoError(t, err)

	list, err = service.ListBatches("", "removed", "all", 1, 20)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Vero", list.Batches[0].Name)
	assert.Equal(t, "B2", list.Batches[0].PositionsOverview)

	list, err = service.ListBatches("", "stored", "all", 1, 20)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "HEK293", list.Batches[0].Name)
}

func TestListBatchesSearchAndPagination(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	seedStoredCell(t, conn, box.Id, "HEK293", 1, 1)
	seedStoredCell(t, conn, box.Id, "HEK293-GFP", 1, 2)
	seedStoredCell(t, conn, box.Id, "Vero", 1, 3)
	service := NewBatchService(conn)

	list, err := service.ListBatches("HEK", "all", "all", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	list, err = service.ListBatches("", "all", "all", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Batches, 2)

	list, err = service.ListBatches("", "all", "all", 2, 2)
	require.NoError(t, err)
	assert.Len(t, list.Batches, 1)
}

func TestGetCellTypes(t *testing.T) {
	conn := newTestDB(t)
	box := seedHierarchy(t, conn)
	seedStoredCell(t, conn, box.Id, "HEK293", 1, 1)
	seedStoredCell(t, conn, box.Id, "Vero", 1, 2)
	service := NewBatchService(conn)

	// Both seeded batches share the cell type, so the distinct list has one
	// entry until a second type shows up.
	cellTypes, err := service.GetCellTypes()
	require.NoError(t, err)
	assert.Equal(t, []string{"贴壁细胞"}, cellTypes)
}
