package models

import "time"

// RackModel belongs to a freezer; rack names are unique within a freezer,
// not globally.
type RackModel struct {
	Id        int          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string       `json:"name" gorm:"column:name;type:varchar(100);not null;uniqueIndex:idx_racks_freezer_name"`
	FreezerId int          `json:"freezerId" gorm:"column:freezer_id;not null;uniqueIndex:idx_racks_freezer_name"`
	Freezer   FreezerModel `json:"freezer" gorm:"foreignKey:FreezerId;references:Id"`
	Capacity  *int         `json:"capacity" gorm:"column:capacity"`
	Remark    *string      `json:"remark" gorm:"column:remark;type:text"`
	Boxes     []BoxModel   `json:"boxes" gorm:"foreignKey:RackId;references:Id"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (RackModel) TableName() string {
	return "racks"
}
