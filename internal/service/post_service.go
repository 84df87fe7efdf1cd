package service

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/pkg/kafka"
	"PortalPiloto/internal/pkg/minio"
	"PortalPiloto/internal/pkg/redis"
	"PortalPiloto/internal/pkg/security"
	"PortalPiloto/internal/pkg/util"
	"PortalPiloto/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const postCacheTTL = 5 * time.Minute

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, d *dto.PostBaseDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error)
	ListPosts(ctx context.Context, d *dto.PostListDTO) (*dto.PostPageDTO, error)
	UpdatePost(ctx context.Context, userID uint64, roles []string, id uint64, d *dto.PostBaseDTO) error
	DeletePost(ctx context.Context, userID uint64, roles []string, id uint64) error
	BackfillAuthorNames(ctx context.Context) (int64, error)
}

type PostServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
	producer kafka.Producer
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo, producer kafka.Producer) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
		producer: producer,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, d *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if !consts.SetCategories[d.Category] {
		return nil, ErrInvalidCategory
	}
	if len(d.Content) > consts.MaxPostBodyBytes {
		return nil, ErrBodyTooLarge
	}

	content := util.Sanitize(d.Content)
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &model.Post{
		UserID:        userID,
		AuthorName:    user.Name,
		Title:         strings.TrimSpace(d.Title),
		Content:       content,
		Category:      d.Category,
		ImageKey:      d.ImageKey,
		AttachmentKey: d.AttachmentKey,
		VideoKey:      d.VideoKey,
	}
	if err = s.postRepo.CreatePost(ctx, post, mediaFromKeys(d)); err != nil {
		return nil, err
	}

	s.afterPublish(ctx, post)
	return postToDTO(post), nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return postToDTO(post), nil
}

func (s *PostServiceImpl) ListPosts(ctx context.Context, d *dto.PostListDTO) (*dto.PostPageDTO, error) {
	if d.Category != "" && !consts.SetCategories[d.Category] {
		return nil, ErrInvalidCategory
	}

	cacheKey := ""
	if d.Page == 1 && d.PageSize == 20 {
		category := d.Category
		if category == "" {
			category = "todas"
		}
		cacheKey = consts.PublicPostsKey + category
		if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
			var result dto.PostPageDTO
			if err = json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
		}
	}

	posts, total, err := s.postRepo.ListPosts(ctx, d.Category, d.Page, d.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		// nome do autor é preenchido preguiçosamente nas linhas antigas
		if post.AuthorName == "" && post.User.Name != "" {
			post.AuthorName = post.User.Name
			if err = s.postRepo.UpdateAuthorName(ctx, post.ID, post.User.Name); err != nil {
				log.ErrorContext(ctx, "Falha ao preencher author_name", "post_id", post.ID, "err", err)
			}
		}
		items = append(items, postToDTO(post))
	}
	result := &dto.PostPageDTO{Total: total, Items: items}

	if cacheKey != "" {
		if payload, err := json.Marshal(result); err == nil {
			_ = redis.SetWithExpiration(ctx, cacheKey, payload, postCacheTTL)
		}
	}
	return result, nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID uint64, roles []string, id uint64, d *dto.PostBaseDTO) error {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID && !security.HasLevel(roles, consts.RoleAdmin) {
		return ErrPermissionDenied
	}

	if !consts.SetCategories[d.Category] {
		return ErrInvalidCategory
	}
	if len(d.Content) > consts.MaxPostBodyBytes {
		return ErrBodyTooLarge
	}
	content := util.Sanitize(d.Content)
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	post.Title = strings.TrimSpace(d.Title)
	post.Content = content
	post.Category = d.Category
	post.ImageKey = d.ImageKey
	post.AttachmentKey = d.AttachmentKey
	post.VideoKey = d.VideoKey
	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return err
	}

	_ = redis.DeleteByPrefix(ctx, consts.PublicPostsKey)
	return nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID uint64, roles []string, id uint64) error {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID && !security.HasLevel(roles, consts.RoleAdmin) {
		return ErrPermissionDenied
	}

	media, err := s.postRepo.DeletePost(ctx, id)
	if err != nil {
		return err
	}

	// objetos órfãos no armazenamento não são fatais
	for _, key := range objectKeys(post, media) {
		if err = minio.DeleteFile(ctx, key); err != nil {
			log.ErrorContext(ctx, "Falha ao remover objeto de mídia", "key", key, "err", err)
		}
	}

	_ = redis.DeleteByPrefix(ctx, consts.PublicPostsKey)
	return nil
}

func (s *PostServiceImpl) BackfillAuthorNames(ctx context.Context) (int64, error) {
	updated, err := s.postRepo.BackfillAuthorNames(ctx)
	if err != nil {
		return 0, err
	}
	if updated > 0 {
		_ = redis.DeleteByPrefix(ctx, consts.PublicPostsKey)
	}
	return updated, nil
}

func (s *PostServiceImpl) afterPublish(ctx context.Context, post *model.Post) {
	_ = redis.DeleteByPrefix(ctx, consts.PublicPostsKey)

	if s.producer == nil {
		return
	}
	event := &kafka.NewContentEvent{
		PostID:     post.ID,
		Title:      post.Title,
		Category:   post.Category,
		AuthorName: post.AuthorName,
		CreatedAt:  post.CreatedAt,
	}
	if err := s.producer.PublishNewContent(ctx, event); err != nil {
		log.ErrorContext(ctx, "Falha ao publicar evento de novo conteúdo", "post_id", post.ID, "err", err)
	}
}

func mediaFromKeys(d *dto.PostBaseDTO) []*model.PostMedia {
	var media []*model.PostMedia
	if d.ImageKey != "" {
		media = append(media, &model.PostMedia{Kind: consts.MimePrefixImage, ObjectKey: d.ImageKey})
	}
	if d.VideoKey != "" {
		media = append(media, &model.PostMedia{Kind: consts.MimePrefixVideo, ObjectKey: d.VideoKey})
	}
	return media
}

func objectKeys(post *model.Post, media []*model.PostMedia) []string {
	seen := make(map[string]bool)
	var keys []string
	add := func(key string) {
		if key != "" && !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	add(post.ImageKey)
	add(post.AttachmentKey)
	add(post.VideoKey)
	for _, m := range media {
		add(m.ObjectKey)
		add(m.ThumbKey)
	}
	return keys
}

func postToDTO(post *model.Post) *dto.PostDTO {
	out := &dto.PostDTO{}
	_ = copier.Copy(out, post)
	if out.AuthorName == "" {
		out.AuthorName = post.User.Name
	}
	return out
}
