package model

import "time"

type PostMedia struct {
	ID          uint64    `gorm:"primaryKey"`
	PostID      uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	Kind        string    `gorm:"type:varchar(20);not null" json:"kind"`
	ObjectKey   string    `gorm:"type:varchar(255);not null" json:"object_key"`
	ThumbKey    string    `gorm:"type:varchar(255)" json:"thumb_key"`
	ContentType string    `gorm:"type:varchar(100)" json:"content_type"`
	Size        int64     `gorm:"not null;default:0" json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PostMedia) TableName() string {
	return "post_media"
}
