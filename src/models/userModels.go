package models

import "time"

type UserModel struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"column:name;type:varchar(100);not null"`
	Password  string    `json:"-" gorm:"column:password;type:varchar(100);not null"`
	Role      string    `json:"role" gorm:"column:role;type:varchar(20);not null;default:viewer"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  UserModel `json:"user"`
}
