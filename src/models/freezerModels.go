package models

import "time"

type FreezerModel struct {
	Id          int         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string      `json:"name" gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	Location    *string     `json:"location" gorm:"column:location;type:varchar(255)"`
	Temperature *string     `json:"temperature" gorm:"column:temperature;type:varchar(50)"`
	Capacity    *int        `json:"capacity" gorm:"column:capacity"`
	Remark      *string     `json:"remark" gorm:"column:remark;type:text"`
	Racks       []RackModel `json:"racks" gorm:"foreignKey:FreezerId;references:Id"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (FreezerModel) TableName() string {
	return "freezers"
}
