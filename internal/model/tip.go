package model

import (
	"time"
)

type Tip struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;index:idx_tips_user_id" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"type:varchar(50)" json:"category"`
	ImageKey  string    `gorm:"type:varchar(255)" json:"image_key"`
	Status    string    `gorm:"type:varchar(10);not null;default:pendente;index:idx_tips_status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Tip) TableName() string {
	return "tips"
}
