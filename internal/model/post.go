package model

import (
	"time"
)

type Post struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"not null;index:idx_posts_user_id" json:"user_id"`
	// AuthorName é desnormalizado a partir de users; preenchido
	// preguiçosamente na listagem quando vazio
	AuthorName    string    `gorm:"type:varchar(100)" json:"author_name"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Content       string    `gorm:"type:longtext;not null" json:"content"`
	Category      string    `gorm:"type:varchar(20);not null;index:idx_posts_category" json:"category"`
	ImageKey      string    `gorm:"type:varchar(255)" json:"image_key"`
	AttachmentKey string    `gorm:"type:varchar(255)" json:"attachment_key"`
	VideoKey      string    `gorm:"type:varchar(255)" json:"video_key"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User  User        `gorm:"foreignKey:UserID;references:ID"`
	Media []PostMedia `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
