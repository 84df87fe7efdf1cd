package kafka

import "time"

// NewContentEvent publicado quando um post entra no ar (humano ou automático)
type NewContentEvent struct {
	PostID     uint64    `json:"post_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}
