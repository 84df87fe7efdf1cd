package model

import (
	"time"
)

type User struct {
	ID         uint64 `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(100);not null"`
	Email      string `gorm:"type:varchar(255);uniqueIndex:idx_email;not null"`
	Password   string `gorm:"type:varchar(255);not null"`
	NotifyNews bool   `gorm:"type:tinyint(1);default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	UserRoles []UserRole `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
