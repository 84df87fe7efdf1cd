package dto

import "time"

// PostBaseDTO criação/edição de post
type PostBaseDTO struct {
	Title         string `json:"title" binding:"required,max=255"`
	Content       string `json:"content" binding:"required"`
	Category      string `json:"category" binding:"required"`
	ImageKey      string `json:"image_key"`
	AttachmentKey string `json:"attachment_key"`
	VideoKey      string `json:"video_key"`
}

// PostDTO visão pública de um post
type PostDTO struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	AuthorName    string    `json:"author_name"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	ImageKey      string    `json:"image_key"`
	AttachmentKey string    `json:"attachment_key"`
	VideoKey      string    `json:"video_key"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PostListDTO filtros de listagem
type PostListDTO struct {
	Category string `form:"category"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

// PostPageDTO página de posts
type PostPageDTO struct {
	Total int64      `json:"total"`
	Items []*PostDTO `json:"items"`
}
