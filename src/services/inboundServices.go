package services

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/CellBank/CellBank-Backend/src/dtos"
	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/CellBank/CellBank-Backend/src/utils"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// TemplateSheetName is the workbook sheet the bulk-inbound parser reads.
const TemplateSheetName = "入库模板"

// locationSheetName holds the storage-location reference in the template.
const locationSheetName = "存储位置参考"

type InboundService struct {
	db *gorm.DB
}

// NewInboundService creates a new instance of InboundService
func NewInboundService(db *gorm.DB) *InboundService {
	return &InboundService{db: db}
}

// snapshotFreezers reads the full storage hierarchy with the stored cells of
// every box (and their owning batch, for conflict messages). The validator
// works against this single point-in-time snapshot and performs no further
// queries; the partial unique index on cells closes the snapshot-to-commit
// race at commit time.
func (s *InboundService) snapshotFreezers() ([]models.FreezerModel, error) {
	var freezers []models.FreezerModel
	err := s.db.
		Preload("Racks.Boxes.Cells", "status = ?", models.CellStored).
		Preload("Racks.Boxes.Cells.Batch").
		Find(&freezers).Error
	if err != nil {
		return nil, err
	}
	return freezers, nil
}

// ValidateRows validates a bulk-inbound submission against one occupancy
// snapshot and returns every defect found, sorted by row number. An empty
// result means the submission may be committed.
func (s *InboundService) ValidateRows(rows []dtos.ProposedInboundRow) ([]dtos.ValidationError, error) {
	freezers, err := s.snapshotFreezers()
	if err != nil {
		return nil, err
	}
	return validateRows(freezers, rows), nil
}

// claimedPosition remembers which earlier row of the same submission claimed
// a slot, for intra-batch conflict messages.
type claimedPosition struct {
	RowNum int
	Label  string
	Name   string
}

func positionKey(freezerName, rackName, boxName string, row, col int) string {
	return fmt.Sprintf("%s|%s|%s|%d|%d", freezerName, rackName, boxName, row, col)
}

// validateRows is the pure validation pass. It never aborts at the batch
// level: the operator fixing a spreadsheet needs every defect in one
// round-trip. It does abort early per row and per category — once required
// fields are invalid, positional detail is noise.
func validateRows(freezers []models.FreezerModel, rows []dtos.ProposedInboundRow) []dtos.ValidationError {
	errs := []dtos.ValidationError{}

	freezerMap := make(map[string]*models.FreezerModel, len(freezers))
	for i := range freezers {
		freezerMap[freezers[i].Name] = &freezers[i]
	}

	// Slots claimed by earlier rows of this submission, keyed by
	// (freezer, rack, box, row, col).
	claimed := make(map[string]claimedPosition)

	for _, row := range rows {
		hasBasicError := false

		if strings.TrimSpace(row.Name) == "" {
			errs = append(errs, dtos.ValidationError{Row: row.RowNum, Field: "name", Message: "细胞名称不能为空"})
			hasBasicError = true
		}
		if strings.TrimSpace(row.CellType) == "" {
			errs = append(errs, dtos.ValidationError{Row: row.RowNum, Field: "cellType", Message: "细胞类型不能为空"})
			hasBasicError = true
		}
		if strings.TrimSpace(row.Passage) == "" {
			errs = append(errs, dtos.ValidationError{Row: row.RowNum, Field: "passage", Message: "代次不能为空"})
			hasBasicError = true
		}
		if row.Quantity < 1 {
			errs = append(errs, dtos.ValidationError{Row: row.RowNum, Field: "quantity", Message: "数量必须大于0"})
			hasBasicError = true
		}
		if strings.TrimSpace(row.FreezeDate) == "" {
			errs = append(errs, dtos.ValidationError{Row: row.RowNum, Field: "freezeDate", Message: "冻存日期不能为空"})
			hasBasicError = true
		}
		if strings.TrimSpace(row.FreezerName) == "" {
			errs = append(errs, dtos.ValidationError{Row: row.RowNum, Field: "freezerName", Message: "冰箱名称不能为空"})
			hasBasicError = true
		}
		if strings.TrimSpace(row.RackName) == "" {
			errs = append(errs, dtos.ValidationError{Row: row.RowNum, Field: "rackName", Message: "架子名称不能为空"})
			hasBasicError = true
		}
		if strings.TrimSpace(row.BoxName) == "" {
			errs = append(errs, dtos.ValidationError{Row: row.RowNum, Field: "boxName", Message: "盒子名称不能为空"})
			hasBasicError = true
		}
		if len(row.Positions) == 0 {
			errs = append(errs, dtos.ValidationError{Row: row.RowNum, Field: "positions", Message: "位置不能为空"})
			hasBasicError = true
		}

		// A fundamentally malformed row gets no location or position
		// checks; other rows still get validated.
		if hasBasicError {
			continue
		}

		freezer, ok := freezerMap[row.FreezerName]
		if !ok {
			errs = append(errs, dtos.ValidationError{
				Row:     row.RowNum,
				Field:   "freezerName",
				Message: fmt.Sprintf("冰箱\"%s\"不存在", row.FreezerName),
				Value:   row.FreezerName,
			})
			continue
		}

		var rack *models.RackModel
		for i := range freezer.Racks {
			if freezer.Racks[i].Name == row.RackName {
				rack = &freezer.Racks[i]
				break
			}
		}
		if rack == nil {
			errs = append(errs, dtos.ValidationError{
				Row:     row.RowNum,
				Field:   "rackName",
				Message: fmt.Sprintf("架子\"%s\"不存在或不属于冰箱\"%s\"", row.RackName, row.FreezerName),
				Value:   fmt.Sprintf("%s → %s", row.FreezerName, row.RackName),
			})
			continue
		}

		var box *models.BoxModel
		for i := range rack.Boxes {
			if rack.Boxes[i].Name == row.BoxName {
				box = &rack.Boxes[i]
				break
			}
		}
		if box == nil {
			errs = append(errs, dtos.ValidationError{
				Row:     row.RowNum,
				Field:   "boxName",
				Message: fmt.Sprintf("盒子\"%s\"不存在或不属于架子\"%s\"", row.BoxName, row.RackName),
				Value:   fmt.Sprintf("%s → %s → %s", row.FreezerName, row.RackName, row.BoxName),
			})
			continue
		}

		if len(row.Positions) != row.Quantity {
			errs = append(errs, dtos.ValidationError{
				Row:     row.RowNum,
				Field:   "positions",
				Message: fmt.Sprintf("数量为%d管，但只填写了%d个位置", row.Quantity, len(row.Positions)),
				Value:   fmt.Sprintf("数量: %d, 位置: %d个", row.Quantity, len(row.Positions)),
			})
			continue
		}

		// Slots of this box already occupied in storage.
		occupied := make(map[string]string, len(box.Cells))
		for _, cell := range box.Cells {
			occupied[fmt.Sprintf("%d-%d", cell.PositionRow, cell.PositionCol)] = cell.Batch.Name
		}

		for _, label := range row.Positions {
			pos, err := utils.ParsePosition(label)
			if err != nil {
				errs = append(errs, dtos.ValidationError{
					Row:     row.RowNum,
					Field:   "positions",
					Message: fmt.Sprintf("位置\"%s\"格式错误，正确格式如：A1, B2, C3", label),
					Value:   label,
				})
				continue
			}

			if pos.Row > box.Rows || pos.Col > box.Cols {
				errs = append(errs, dtos.ValidationError{
					Row:     row.RowNum,
					Field:   "positions",
					Message: fmt.Sprintf("位置\"%s\"超出盒子范围（盒子大小：%d行×%d列）", label, box.Rows, box.Cols),
					Value:   label,
				})
				continue
			}

			if batchName, taken := occupied[fmt.Sprintf("%d-%d", pos.Row, pos.Col)]; taken {
				errs = append(errs, dtos.ValidationError{
					Row:     row.RowNum,
					Field:   "positions",
					Message: fmt.Sprintf("位置%s已被占用（现有细胞：%s）", label, batchName),
					Value:   label,
				})
				continue
			}

			key := positionKey(row.FreezerName, row.RackName, row.BoxName, pos.Row, pos.Col)
			if prev, taken := claimed[key]; taken {
				errs = append(errs, dtos.ValidationError{
					Row:     row.RowNum,
					Field:   "positions",
					Message: fmt.Sprintf("位置%s与本批次第%d行的位置重复（细胞：%s）", label, prev.RowNum, prev.Name),
					Value:   label,
				})
				continue
			}
			claimed[key] = claimedPosition{RowNum: row.RowNum, Label: label, Name: row.Name}
		}
	}

	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Row < errs[j].Row })
	return errs
}

// CommitRow writes one validated row as a batch with its cells and the
// inbound log entry, all inside one transaction. Occupancy is re-checked
// here because the validation snapshot may be stale; the partial unique
// index on cells is the final guard against concurrent inbound requests.
func (s *InboundService) CommitRow(row dtos.ProposedInboundRow) (*models.CellBatchModel, error) {
	var created *models.CellBatchModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		box, err := resolveBox(tx, row.FreezerName, row.RackName, row.BoxName)
		if err != nil {
			return err
		}

		positions := make([]utils.GridPosition, 0, len(row.Positions))
		for _, label := range row.Positions {
			pos, err := utils.ParsePosition(label)
			if err != nil {
				return fmt.Errorf("位置格式错误: %s", label)
			}
			positions = append(positions, pos)
		}
		if len(positions) == 0 {
			return errors.New("请选择存储位置")
		}
		if len(positions) != row.Quantity {
			return fmt.Errorf("请选择 %d 个位置，当前已选 %d 个", row.Quantity, len(positions))
		}

		freezeDate, err := time.Parse("2006-01-02", strings.TrimSpace(row.FreezeDate))
		if err != nil {
			return fmt.Errorf("冻存日期格式错误: %s", row.FreezeDate)
		}

		if err := ensureSlotsFree(tx, box.Id, positions); err != nil {
			return err
		}

		batch := models.CellBatchModel{
			Name:          row.Name,
			CellType:      row.CellType,
			Passage:       row.Passage,
			TotalQuantity: row.Quantity,
			FreezeDate:    freezeDate,
			FreezeMedium:  optionalString(row.FreezeMedium),
			DonorInfo:     optionalString(row.DonorInfo),
			Operator:      optionalString(row.Operator),
			Remark:        optionalString(row.Remark),
		}
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}

		for _, pos := range positions {
			cell := models.CellModel{
				PositionRow: pos.Row,
				PositionCol: pos.Col,
				Status:      models.CellStored,
				BatchId:     batch.Id,
				BoxId:       box.Id,
			}
			if err := tx.Create(&cell).Error; err != nil {
				return err
			}
		}

		remark := "细胞入库"
		logEntry := models.OperationLogModel{
			Operation: models.OperationInbound,
			Quantity:  batch.TotalQuantity,
			BatchId:   &batch.Id,
			Operator:  optionalString(row.Operator),
			Remark:    &remark,
		}
		if err := tx.Create(&logEntry).Error; err != nil {
			return err
		}

		created = &batch
		return nil
	})

	return created, err
}

// CommitRows commits validated rows one by one. Each row is its own
// transaction: a failing row neither stops nor rolls back the others, and
// the caller gets a per-row outcome list.
func (s *InboundService) CommitRows(rows []dtos.ProposedInboundRow) dtos.BulkCommitResult {
	result := dtos.BulkCommitResult{Success: true, Results: make([]dtos.RowCommitResult, 0, len(rows))}

	for _, row := range rows {
		batch, err := s.CommitRow(row)
		if err != nil {
			result.Success = false
			result.Results = append(result.Results, dtos.RowCommitResult{Row: row.RowNum, Error: err.Error()})
			continue
		}
		result.Committed++
		result.Results = append(result.Results, dtos.RowCommitResult{Row: row.RowNum, Success: true, BatchId: batch.Id})
	}

	return result
}

// CreateBatch performs a single manual inbound into an explicitly chosen box.
func (s *InboundService) CreateBatch(dto *dtos.CreateBatchDTO) (*models.CellBatchModel, []models.CellModel, error) {
	if dto.BoxId == 0 {
		return nil, nil, errors.New("请选择存储位置")
	}

	positions := make([]utils.GridPosition, 0, len(dto.Positions)+len(dto.PositionLabels))
	for _, p := range dto.Positions {
		positions = append(positions, utils.GridPosition{Row: p.Row, Col: p.Col})
	}
	for _, label := range dto.PositionLabels {
		pos, err := utils.ParsePosition(label)
		if err != nil {
			return nil, nil, fmt.Errorf("位置格式错误: %s", label)
		}
		positions = append(positions, pos)
	}

	if len(positions) == 0 {
		return nil, nil, errors.New("请选择存储位置")
	}
	if len(positions) != dto.TotalQuantity {
		return nil, nil, fmt.Errorf("请选择 %d 个位置，当前已选 %d 个", dto.TotalQuantity, len(positions))
	}

	freezeDate, err := time.Parse("2006-01-02", strings.TrimSpace(dto.FreezeDate))
	if err != nil {
		return nil, nil, fmt.Errorf("冻存日期格式错误: %s", dto.FreezeDate)
	}

	var batch models.CellBatchModel
	var cells []models.CellModel

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var box models.BoxModel
		if err := tx.First(&box, dto.BoxId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("请选择存储位置")
			}
			return err
		}

		if err := ensureSlotsFree(tx, box.Id, positions); err != nil {
			return err
		}

		batch = models.CellBatchModel{
			BatchCode:     optionalString(dto.BatchCode),
			Name:          dto.Name,
			CellType:      dto.CellType,
			Passage:       dto.Passage,
			TotalQuantity: dto.TotalQuantity,
			FreezeDate:    freezeDate,
			FreezeMedium:  optionalString(dto.FreezeMedium),
			DonorInfo:     optionalString(dto.DonorInfo),
			CultureInfo:   optionalString(dto.CultureInfo),
			Operator:      optionalString(dto.Operator),
			Remark:        optionalString(dto.Remark),
		}
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}

		for i, pos := range positions {
			cell := models.CellModel{
				PositionRow: pos.Row,
				PositionCol: pos.Col,
				Status:      models.CellStored,
				BatchId:     batch.Id,
				BoxId:       box.Id,
			}
			if dto.Code != "" {
				code := fmt.Sprintf("%s-%d", dto.Code, i+1)
				cell.Code = &code
			}
			if err := tx.Create(&cell).Error; err != nil {
				return err
			}
			cells = append(cells, cell)
		}

		remark := "细胞入库"
		logEntry := models.OperationLogModel{
			Operation: models.OperationInbound,
			Quantity:  batch.TotalQuantity,
			BatchId:   &batch.Id,
			Operator:  optionalString(dto.Operator),
			Remark:    &remark,
		}
		return tx.Create(&logEntry).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &batch, cells, nil
}

// resolveBox walks the freezer -> rack -> box hierarchy by names, reporting
// the first level that does not match.
func resolveBox(tx *gorm.DB, freezerName, rackName, boxName string) (*models.BoxModel, error) {
	var freezer models.FreezerModel
	if err := tx.Where("name = ?", freezerName).First(&freezer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("冰箱\"%s\"不存在", freezerName)
		}
		return nil, err
	}

	var rack models.RackModel
	if err := tx.Where("freezer_id = ? AND name = ?", freezer.Id, rackName).First(&rack).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("架子\"%s\"不存在或不属于冰箱\"%s\"", rackName, freezerName)
		}
		return nil, err
	}

	var box models.BoxModel
	if err := tx.Where("rack_id = ? AND name = ?", rack.Id, boxName).First(&box).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("盒子\"%s\"不存在或不属于架子\"%s\"", boxName, rackName)
		}
		return nil, err
	}

	return &box, nil
}

// ensureSlotsFree re-checks, inside the commit transaction, that none of the
// wanted slots holds a stored cell.
func ensureSlotsFree(tx *gorm.DB, boxId int, positions []utils.GridPosition) error {
	var stored []models.CellModel
	if err := tx.Where("box_id = ? AND status = ?", boxId, models.CellStored).Find(&stored).Error; err != nil {
		return err
	}

	taken := make(map[string]bool, len(stored))
	for _, cell := range stored {
		taken[fmt.Sprintf("%d-%d", cell.PositionRow, cell.PositionCol)] = true
	}

	var conflicts []string
	for _, pos := range positions {
		if taken[fmt.Sprintf("%d-%d", pos.Row, pos.Col)] {
			conflicts = append(conflicts, utils.FormatPosition(pos.Row, pos.Col))
		}
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("以下位置已被占用: %s", strings.Join(conflicts, ", "))
	}

	return nil
}

var positionSeparators = regexp.MustCompile(`[,，;；\s]+`)

// SplitPositions splits a free-text position cell ("A1,A2; B3") into clean
// uppercase labels.
func SplitPositions(raw string) []string {
	parts := positionSeparators.Split(strings.TrimSpace(raw), -1)
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		labels = append(labels, strings.ToUpper(strings.TrimSpace(part)))
	}
	return labels
}

// ParseWorkbook reads the fixed-column template sheet of an uploaded
// workbook into proposed rows. Row numbers are 1-based sheet rows (the
// header is row 1), so validation errors point at the row the operator sees
// in Excel. Parsing is lenient: a malformed quantity becomes 0 and is
// reported by the validator, not here.
func (s *InboundService) ParseWorkbook(r io.Reader) ([]dtos.ProposedInboundRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.New("无效的Excel文件")
	}
	defer f.Close()

	sheetRows, err := f.GetRows(TemplateSheetName)
	if err != nil {
		return nil, fmt.Errorf("无法读取工作表\"%s\"", TemplateSheetName)
	}

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	rows := make([]dtos.ProposedInboundRow, 0, len(sheetRows))
	for i, sheetRow := range sheetRows {
		if i == 0 {
			continue // header
		}

		empty := true
		for _, value := range sheetRow {
			if strings.TrimSpace(value) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		quantity, _ := strconv.Atoi(cell(sheetRow, 3))

		rows = append(rows, dtos.ProposedInboundRow{
			RowNum:       i + 1,
			Name:         cell(sheetRow, 0),
			CellType:     cell(sheetRow, 1),
			Passage:      cell(sheetRow, 2),
			Quantity:     quantity,
			FreezeDate:   cell(sheetRow, 4),
			FreezerName:  cell(sheetRow, 5),
			RackName:     cell(sheetRow, 6),
			BoxName:      cell(sheetRow, 7),
			Positions:    SplitPositions(cell(sheetRow, 8)),
			FreezeMedium: cell(sheetRow, 9),
			DonorInfo:    cell(sheetRow, 10),
			Operator:     cell(sheetRow, 11),
			Remark:       cell(sheetRow, 12),
		})
	}

	return rows, nil
}

// Template generates the bulk-inbound workbook: the template sheet with a
// header and one example row, plus a reference sheet listing every storage
// location and its current occupancy.
func (s *InboundService) Template() (*excelize.File, error) {
	locations, err := locationList(s.db)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", TemplateSheetName); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"细胞名称*", "细胞类型*", "代次*", "数量*", "冻存日期*",
		"冰箱名称*", "架子名称*", "盒子名称*", "位置*",
		"冻存液", "供体信息", "操作人", "备注",
	}
	if err := f.SetSheetRow(TemplateSheetName, "A1", &headers); err != nil {
		return nil, err
	}

	exampleFreezer, exampleRack, exampleBox := "1号冰箱", "A架", "盒子1"
	if len(locations) > 0 {
		exampleFreezer = locations[0].FreezerName
		exampleRack = locations[0].RackName
		exampleBox = locations[0].BoxName
	}
	example := []interface{}{
		"HEK293", "贴壁细胞", "P5", 3, "2024-01-15",
		exampleFreezer, exampleRack, exampleBox, "A1,A2,A3",
		"10% DMSO + 90% FBS", "人源", "张医生", "示例备注",
	}
	if err := f.SetSheetRow(TemplateSheetName, "A2", &example); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(locationSheetName); err != nil {
		return nil, err
	}
	locationHeaders := []interface{}{"冰箱名称", "架子名称", "盒子名称", "盒子规格", "已存数量", "存储路径"}
	if err := f.SetSheetRow(locationSheetName, "A1", &locationHeaders); err != nil {
		return nil, err
	}
	for i, loc := range locations {
		row := []interface{}{loc.FreezerName, loc.RackName, loc.BoxName, loc.BoxSize, loc.StoredCount, loc.Path}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(locationSheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// optionalString maps an empty string to NULL.
func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
