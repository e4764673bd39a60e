package models

import "time"

// CellBatchModel groups tubes frozen together in one inbound operation.
// Created atomically with its cells; metadata may be edited afterwards.
type CellBatchModel struct {
	Id            int         `json:"id" gorm:"primaryKey;autoIncrement"`
	BatchCode     *string     `json:"batchCode" gorm:"column:batch_code;type:varchar(100)"`
	Name          string      `json:"name" gorm:"column:name;type:varchar(100);not null"`
	CellType      string      `json:"cellType" gorm:"column:cell_type;type:varchar(100);not null"`
	Passage       string      `json:"passage" gorm:"column:passage;type:varchar(50);not null"`
	TotalQuantity int         `json:"totalQuantity" gorm:"column:total_quantity;not null"`
	FreezeDate    time.Time   `json:"freezeDate" gorm:"column:freeze_date;not null"`
	FreezeMedium  *string     `json:"freezeMedium" gorm:"column:freeze_medium;type:varchar(255)"`
	DonorInfo     *string     `json:"donorInfo" gorm:"column:donor_info;type:varchar(255)"`
	CultureInfo   *string     `json:"cultureInfo" gorm:"column:culture_info;type:varchar(255)"`
	Operator      *string     `json:"operator" gorm:"column:operator;type:varchar(100)"`
	Remark        *string     `json:"remark" gorm:"column:remark;type:text"`
	Cells         []CellModel `json:"cells" gorm:"foreignKey:BatchId;references:Id"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func (CellBatchModel) TableName() string {
	return "cell_batches"
}
