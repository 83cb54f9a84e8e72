package model

import "time"

// User 用户（由账号子系统管理，这里只保留核心字段）
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(254)"`
	Password  string `gorm:"type:varchar(128);not null"` // bcrypt hash
	CreatedAt time.Time
}

func (User) TableName() string { return "users" }
