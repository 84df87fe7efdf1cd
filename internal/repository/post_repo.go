package repository

import (
	"PortalPiloto/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, media []*model.PostMedia) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context, category string, page, pageSize int) ([]*model.Post, int64, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) ([]*model.PostMedia, error)
	UpdateAuthorName(ctx context.Context, postID uint64, name string) error
	// BackfillAuthorNames preenche author_name a partir de users para todas as
	// linhas onde está vazio; retorna quantas linhas foram atualizadas.
	BackfillAuthorNames(ctx context.Context) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, media []*model.PostMedia) error {
	if len(media) == 0 {
		return s.db.WithContext(ctx).Create(post).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, m := range media {
			m.PostID = post.ID
		}
		if err := tx.Create(media).Error; err != nil {
			return err
		}
		return nil
	})
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("User").Preload("Media").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) ListPosts(ctx context.Context, category string, page, pageSize int) ([]*model.Post, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Post{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := query.Preload("User").Preload("Media").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Updates(post).Error
}

// DeletePost remove o post e as linhas de mídia; retorna as mídias removidas
// para o serviço apagar os objetos no armazenamento.
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) ([]*model.PostMedia, error) {
	var media []*model.PostMedia
	err := s.db.WithContext(ctx).Where("post_id = ?", id).Find(&media).Error
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PostMedia{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return media, nil
}

func (s *PostRepoImpl) UpdateAuthorName(ctx context.Context, postID uint64, name string) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", postID).
		Update("author_name", name).Error
}

func (s *PostRepoImpl) BackfillAuthorNames(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Exec(
		"UPDATE posts SET author_name = (SELECT name FROM users WHERE users.id = posts.user_id) " +
			"WHERE author_name = '' OR author_name IS NULL")
	return result.RowsAffected, result.Error
}
