package models

import "time"

// BoxModel is a rows×cols grid container; box names are unique within a rack.
type BoxModel struct {
	Id        int         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string      `json:"name" gorm:"column:name;type:varchar(100);not null;uniqueIndex:idx_boxes_rack_name"`
	RackId    int         `json:"rackId" gorm:"column:rack_id;not null;uniqueIndex:idx_boxes_rack_name"`
	Rack      RackModel   `json:"rack" gorm:"foreignKey:RackId;references:Id"`
	Rows      int         `json:"rows" gorm:"column:rows;not null;default:10"`
	Cols      int         `json:"cols" gorm:"column:cols;not null;default:10"`
	Remark    *string     `json:"remark" gorm:"column:remark;type:text"`
	Cells     []CellModel `json:"cells" gorm:"foreignKey:BoxId;references:Id"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (BoxModel) TableName() string {
	return "boxes"
}
