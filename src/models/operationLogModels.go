package models

import "time"

type OperationKind string

const (
	OperationInbound  OperationKind = "inbound"
	OperationOutbound OperationKind = "outbound"
)

// OperationLogModel is the append-only audit trail; rows are never updated
// or deleted.
type OperationLogModel struct {
	Id        int             `json:"id" gorm:"primaryKey;autoIncrement"`
	Operation OperationKind   `json:"operation" gorm:"column:operation;type:varchar(20);not null"`
	Quantity  int             `json:"quantity" gorm:"column:quantity;not null"`
	BatchId   *int            `json:"batchId" gorm:"column:batch_id"`
	Batch     *CellBatchModel `json:"batch,omitempty" gorm:"foreignKey:BatchId;references:Id"`
	CellId    *int            `json:"cellId" gorm:"column:cell_id"`
	Cell      *CellModel      `json:"cell,omitempty" gorm:"foreignKey:CellId;references:Id"`
	Reason    *string         `json:"reason" gorm:"column:reason;type:varchar(255)"`
	Operator  *string         `json:"operator" gorm:"column:operator;type:varchar(100)"`
	Remark    *string         `json:"remark" gorm:"column:remark;type:text"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (OperationLogModel) TableName() string {
	return "operation_logs"
}
