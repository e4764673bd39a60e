package services

import (
	"testing"

	"github.com/CellBank/CellBank-Backend/src/dtos"
	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFreezers builds the hierarchy the validator sees: one freezer with one
// rack holding a 10x10 box and a small 5x5 box. Slot A1 of 盒子1 already
// holds a stored HEK293 cell.
func testFreezers() []models.FreezerModel {
	return []models.FreezerModel{
		{
			Name: "1号冰箱",
			Racks: []models.RackModel{
				{
					Name: "A架",
					Boxes: []models.BoxModel{
						{
							Name: "盒子1",
							Rows: 10,
							Cols: 10,
							Cells: []models.CellModel{
								{
									PositionRow: 1,
									PositionCol: 1,
									Status:      models.CellStored,
									Batch:       models.CellBatchModel{Name: "HEK293"},
								},
							},
						},
						{Name: "小盒", Rows: 5, Cols: 5},
					},
				},
			},
		},
	}
}

func validRow(rowNum int) dtos.ProposedInboundRow {
	return dtos.ProposedInboundRow{
		RowNum:      rowNum,
		Name:        "CHO-K1",
		CellType:    "贴壁细胞",
		Passage:     "P3",
		Quantity:    2,
		FreezeDate:  "2024-03-01",
		FreezerName: "1号冰箱",
		RackName:    "A架",
		BoxName:     "盒子1",
		Positions:   []string{"B1", "B2"},
	}
}

func TestValidateRowsAcceptsCleanSubmission(t *testing.T) {
	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{validRow(2)})
	assert.Empty(t, errs)
}

func TestValidateRowsReportsEveryMissingField(t *testing.T) {
	row := dtos.ProposedInboundRow{RowNum: 2}
	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{row})

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		assert.Equal(t, 2, e.Row)
		messages = append(messages, e.Message)
	}
	assert.ElementsMatch(t, []string{
		"细胞名称不能为空",
		"细胞类型不能为空",
		"代次不能为空",
		"数量必须大于0",
		"冻存日期不能为空",
		"冰箱名称不能为空",
		"架子名称不能为空",
		"盒子名称不能为空",
		"位置不能为空",
	}, messages)
}

func TestValidateRowsWhitespaceOnlyFieldIsMissing(t *testing.T) {
	row := validRow(2)
	row.Name = "   "
	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{row})

	require.Len(t, errs, 1)
	assert.Equal(t, "细胞名称不能为空", errs[0].Message)
}

func TestValidateRowsUnknownFreezerShortCircuitsRow(t *testing.T) {
	row := validRow(2)
	row.FreezerName = "Ghost"
	row.RackName = "NoSuchRack"
	row.Positions = []string{"bogus", "B2"}

	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{row})

	// One error only: downstream rack/box/position checks are skipped.
	require.Len(t, errs, 1)
	assert.Equal(t, "冰箱\"Ghost\"不存在", errs[0].Message)
	assert.Equal(t, "freezerName", errs[0].Field)
}

func TestValidateRowsRackMustBelongToFreezer(t *testing.T) {
	row := validRow(2)
	row.RackName = "B架"
	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{row})

	require.Len(t, errs, 1)
	assert.Equal(t, "架子\"B架\"不存在或不属于冰箱\"1号冰箱\"", errs[0].Message)
}

func TestValidateRowsBoxMustBelongToRack(t *testing.T) {
	row := validRow(2)
	row.BoxName = "盒子9"
	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{row})

	require.Len(t, errs, 1)
	assert.Equal(t, "盒子\"盒子9\"不存在或不属于架子\"A架\"", errs[0].Message)
}

func TestValidateRowsQuantityMustMatchPositionCount(t *testing.T) {
	row := validRow(2)
	row.Quantity = 3
	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{row})

	require.Len(t, errs, 1)
	assert.Equal(t, "数量为3管，但只填写了2个位置", errs[0].Message)
}

func TestValidateRowsPositionFormat(t *testing.T) {
	row := validRow(2)
	row.Positions = []string{"1A", "B2"}
	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{row})

	require.Len(t, errs, 1)
	assert.Equal(t, "位置\"1A\"格式错误，正确格式如：A1, B2, C3", errs[0].Message)
	assert.Equal(t, "1A", errs[0].Value)
}

func TestValidateRowsPositionOutOfBounds(t *testing.T) {
	row := validRow(2)
	row.BoxName = "小盒"
	row.Positions = []string{"F1", "A6"}

	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{row})

	require.Len(t, errs, 2)
	assert.Equal(t, "位置\"F1\"超出盒子范围（盒子大小：5行×5列）", errs[0].Message)
	assert.Equal(t, "位置\"A6\"超出盒子范围（盒子大小：5行×5列）", errs[1].Message)
}

func TestValidateRowsStoredConflictNamesOccupant(t *testing.T) {
	row := validRow(2)
	row.Positions = []string{"A1", "B2"}
	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{row})

	require.Len(t, errs, 1)
	assert.Equal(t, "位置A1已被占用（现有细胞：HEK293）", errs[0].Message)
}

func TestValidateRowsIntraBatchConflict(t *testing.T) {
	first := validRow(2)
	second := validRow(3)
	second.Name = "Vero"
	second.Positions = []string{"B2", "C1"}

	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{first, second})

	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Row)
	assert.Equal(t, "位置B2与本批次第2行的位置重复（细胞：CHO-K1）", errs[0].Message)
}

func TestValidateRowsSameSlotInDifferentBoxesIsFine(t *testing.T) {
	first := validRow(2)
	second := validRow(3)
	second.BoxName = "小盒"

	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{first, second})
	assert.Empty(t, errs)
}

func TestValidateRowsCollectsAcrossRowsSortedByRow(t *testing.T) {
	bad1 := validRow(2)
	bad1.FreezerName = "Ghost"
	good := validRow(3)
	bad2 := validRow(4)
	bad2.Quantity = 5

	errs := validateRows(testFreezers(), []dtos.ProposedInboundRow{bad2, good, bad1})

	require.Len(t, errs, 2)
	assert.Equal(t, 2, errs[0].Row)
	assert.Equal(t, 4, errs[1].Row)
}

func TestValidateRowsIsReadOnly(t *testing.T) {
	freezers := testFreezers()
	rows := []dtos.ProposedInboundRow{validRow(2)}

	first := validateRows(freezers, rows)
	second := validateRows(freezers, rows)
	assert.Equal(t, first, second)
}
