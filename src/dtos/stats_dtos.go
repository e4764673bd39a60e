package dtos

// CellTypeStatDTO counts stored cells of one cell type.
type CellTypeStatDTO struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// MonthCountDTO is one point of the monthly trend series.
type MonthCountDTO struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// FreezerActivityDTO aggregates inbound/outbound tube counts per freezer.
type FreezerActivityDTO struct {
	FreezerName string `json:"freezerName"`
	Inbound     int    `json:"inbound"`
	Outbound    int    `json:"outbound"`
}

// UserActivityDTO aggregates inbound/outbound tube counts per operator.
type UserActivityDTO struct {
	UserName string `json:"userName"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// StatsOverviewDTO is the dashboard payload.
type StatsOverviewDTO struct {
	FreezerCount      int                  `json:"freezerCount"`
	StoredCells       int                  `json:"storedCells"`
	RemovedCells      int                  `json:"removedCells"`
	TotalCells        int                  `json:"totalCells"`
	UserCount         int                  `json:"userCount"`
	BatchCount        int                  `json:"batchCount"`
	InboundThisMonth  int                  `json:"inboundThisMonth"`
	OutboundThisMonth int                  `json:"outboundThisMonth"`
	CellTypeStats     []CellTypeStatDTO    `json:"cellTypeStats"`
	MonthlyInbound    []MonthCountDTO      `json:"monthlyInbound"`
	MonthlyOutbound   []MonthCountDTO      `json:"monthlyOutbound"`
	FreezerMonthStats []FreezerActivityDTO `json:"freezerMonthStats"`
	UserMonthStats    []UserActivityDTO    `json:"userMonthStats"`
}

// TimeRangeStatsDTO is the report for an arbitrary [start, end] window.
type TimeRangeStatsDTO struct {
	StartDate    string               `json:"startDate"`
	EndDate      string               `json:"endDate"`
	FreezerStats []FreezerActivityDTO `json:"freezerStats"`
	UserStats    []UserActivityDTO    `json:"userStats"`
}
