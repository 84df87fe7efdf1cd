package dto

import "time"

// TipCreateDTO envio de dica por usuário autenticado
type TipCreateDTO struct {
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"max=50"`
	ImageKey string `json:"image_key"`
}

// TipDTO visão de uma dica
type TipDTO struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	ImageKey   string    `json:"image_key"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TipListDTO filtros da fila de moderação
type TipListDTO struct {
	Status   string `form:"status"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

// TipPageDTO página de dicas
type TipPageDTO struct {
	Total int64     `json:"total"`
	Items []*TipDTO `json:"items"`
}

// TipStatusDTO decisão de moderação
type TipStatusDTO struct {
	Status string `json:"status" binding:"required"`
}
