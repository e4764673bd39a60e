package dtos

import "github.com/CellBank/CellBank-Backend/src/models"

// CreateBatchDTO is the payload of a single manual inbound: one batch stored
// into one box at explicitly chosen positions. Positions may come either as
// structured row/col pairs (position picker) or as labels like "A1" (bulk
// commit path).
type CreateBatchDTO struct {
	BatchCode      string            `json:"batchCode"`
	Name           string            `json:"name"`
	CellType       string            `json:"cellType"`
	Passage        string            `json:"passage"`
	TotalQuantity  int               `json:"totalQuantity"`
	FreezeDate     string            `json:"freezeDate"`
	FreezeMedium   string            `json:"freezeMedium"`
	DonorInfo      string            `json:"donorInfo"`
	CultureInfo    string            `json:"cultureInfo"`
	Operator       string            `json:"operator"`
	Remark         string            `json:"remark"`
	Code           string            `json:"code"`
	BoxId          int               `json:"boxId"`
	Positions      []GridPositionDTO `json:"positions"`
	PositionLabels []string          `json:"positionLabels"`
}

type GridPositionDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BatchSummaryDTO is one row of the inventory list: a batch plus derived
// occupancy counts and human-readable overviews.
type BatchSummaryDTO struct {
	models.CellBatchModel
	StoredCount       int    `json:"storedCount"`
	RemovedCount      int    `json:"removedCount"`
	BatchStatus       string `json:"batchStatus"`
	LocationOverview  string `json:"locationOverview"`
	PositionsOverview string `json:"positionsOverview"`
}

// BatchListDTO is a page of the inventory list.
type BatchListDTO struct {
	Batches  []BatchSummaryDTO `json:"batches"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// OutboundRecordDTO is one formatted outbound history entry.
type OutboundRecordDTO struct {
	Id        int    `json:"id"`
	CreatedAt string `json:"createdAt"`
	CellName  string `json:"cellName"`
	CellType  string `json:"cellType"`
	Passage   string `json:"passage"`
	Position  string `json:"position"`
	Location  string `json:"location"`
	Reason    string `json:"reason"`
	Operator  string `json:"operator"`
}

// LocationDTO is one box with its full storage path, used by the template
// sheet and the location picker.
type LocationDTO struct {
	FreezerName string `json:"freezerName"`
	RackName    string `json:"rackName"`
	BoxName     string `json:"boxName"`
	BoxSize     string `json:"boxSize"`
	StoredCount int    `json:"storedCount"`
	Path        string `json:"path"`
}
