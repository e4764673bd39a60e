package models

import "time"

type CellStatus string

const (
	CellStored  CellStatus = "stored"
	CellRemoved CellStatus = "removed"
)

// CellModel is one physical tube at one grid position of one box.
// Status only ever moves stored -> removed. At most one stored cell may
// occupy a (box, row, col) slot; a partial unique index created at startup
// enforces this at the database level.
type CellModel struct {
	Id          int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Code        *string        `json:"code" gorm:"column:code;type:varchar(100)"`
	PositionRow int            `json:"positionRow" gorm:"column:position_row;not null"`
	PositionCol int            `json:"positionCol" gorm:"column:position_col;not null"`
	Status      CellStatus     `json:"status" gorm:"column:status;type:varchar(20);not null;default:stored"`
	BatchId     int            `json:"batchId" gorm:"column:batch_id;not null"`
	Batch       CellBatchModel `json:"batch" gorm:"foreignKey:BatchId;references:Id"`
	BoxId       int            `json:"boxId" gorm:"column:box_id;not null"`
	Box         BoxModel       `json:"box" gorm:"foreignKey:BoxId;references:Id"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (CellModel) TableName() string {
	return "cells"
}
