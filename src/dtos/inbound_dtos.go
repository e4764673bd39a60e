package dtos

// ProposedInboundRow is one spreadsheet row of a bulk inbound submission,
// already parsed into plain fields. It exists only during validation and
// commit; it is never persisted.
type ProposedInboundRow struct {
	RowNum       int      `json:"rowNum"`
	Name         string   `json:"name"`
	CellType     string   `json:"cellType"`
	Passage      string   `json:"passage"`
	Quantity     int      `json:"quantity"`
	FreezeDate   string   `json:"freezeDate"`
	FreezerName  string   `json:"freezerName"`
	RackName     string   `json:"rackName"`
	BoxName      string   `json:"boxName"`
	Positions    []string `json:"positions"`
	FreezeMedium string   `json:"freezeMedium"`
	DonorInfo    string   `json:"donorInfo"`
	Operator     string   `json:"operator"`
	Remark       string   `json:"remark"`
}

// ValidationError points at one defect of one spreadsheet row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// ValidationResult is the shape returned to the bulk-inbound caller.
type ValidationResult struct {
	Success bool              `json:"success"`
	Errors  []ValidationError `json:"errors,omitempty"`
	Message string            `json:"message,omitempty"`
}

// RowCommitResult reports the outcome of committing one validated row.
// Rows commit independently; one failure does not roll back the others.
type RowCommitResult struct {
	Row     int    `json:"row"`
	Success bool   `json:"success"`
	BatchId int    `json:"batchId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BulkCommitResult summarizes a bulk inbound commit.
type BulkCommitResult struct {
	Success   bool              `json:"success"`
	Committed int               `json:"committed"`
	Results   []RowCommitResult `json:"results"`
}
