package service

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/repository"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type postFixture struct {
	db          *gorm.DB
	svc         PostService
	colaborador *model.User
	admin       *model.User
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	db := newTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db), repository.NewUserRepo(db), nil)
	return &postFixture{
		db:          db,
		svc:         svc,
		colaborador: createTestUser(t, db, "Iara", "iara@example.com", consts.RoleColaborador),
		admin:       createTestUser(t, db, "João", "joao@example.com", consts.RoleAdmin),
	}
}

func validPost() *dto.PostBaseDTO {
	return &dto.PostBaseDTO{
		Title:    "Novo firmware disponível",
		Content:  "<p>Atualize antes do próximo voo.</p>",
		Category: consts.CategoryFirmware,
	}
}

func TestCreatePostDenormalizesAuthor(t *testing.T) {
	f := newPostFixture(t)

	post, err := f.svc.CreatePost(context.Background(), f.colaborador.ID, validPost())
	require.NoError(t, err)
	assert.Equal(t, "Iara", post.AuthorName)
	assert.Equal(t, consts.CategoryFirmware, post.Category)
}

func TestCreatePostRejectsUnknownCategory(t *testing.T) {
	f := newPostFixture(t)

	d := validPost()
	d.Category = "opiniao"
	_, err := f.svc.CreatePost(context.Background(), f.colaborador.ID, d)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreatePostRejectsOversizedBody(t *testing.T) {
	f := newPostFixture(t)

	d := validPost()
	d.Content = "<p>" + strings.Repeat("a", consts.MaxPostBodyBytes) + "</p>"
	_, err := f.svc.CreatePost(context.Background(), f.colaborador.ID, d)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestCreatePostSanitizes(t *testing.T) {
	f := newPostFixture(t)

	d := validPost()
	d.Content = "<p>ok</p><script>roubo()</script>"
	post, err := f.svc.CreatePost(context.Background(), f.colaborador.ID, d)
	require.NoError(t, err)
	assert.NotContains(t, post.Content, "script")
}

func TestUpdatePostOwnershipRules(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post, err := f.svc.CreatePost(ctx, f.colaborador.ID, validPost())
	require.NoError(t, err)

	d := validPost()
	d.Title = "Título revisado"

	// terceiro sem papel de admin não altera
	err = f.svc.UpdatePost(ctx, 9999, []string{consts.RoleColaborador}, post.ID, d)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// autor altera
	require.NoError(t, f.svc.UpdatePost(ctx, f.colaborador.ID, []string{consts.RoleColaborador}, post.ID, d))

	// admin altera qualquer post
	d.Title = "Título final"
	require.NoError(t, f.svc.UpdatePost(ctx, f.admin.ID, []string{consts.RoleAdmin}, post.ID, d))

	got, err := f.svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Título final", got.Title)
}

func TestDeletePost(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post, err := f.svc.CreatePost(ctx, f.colaborador.ID, validPost())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeletePost(ctx, f.colaborador.ID, []string{consts.RoleColaborador}, post.ID))

	_, err = f.svc.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListPostsFillsMissingAuthorName(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	// linha antiga sem author_name
	legacy := &model.Post{
		UserID:   f.colaborador.ID,
		Title:    "antigo",
		Content:  "<p>c</p>",
		Category: consts.CategoryNoticia,
	}
	require.NoError(t, f.db.Create(legacy).Error)

	page, err := f.svc.ListPosts(ctx, &dto.PostListDTO{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Iara", page.Items[0].AuthorName)

	// preenchimento persistido
	var reloaded model.Post
	require.NoError(t, f.db.First(&reloaded, legacy.ID).Error)
	assert.Equal(t, "Iara", reloaded.AuthorName)
}

func TestBackfillAuthorNames(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, f.db.Create(&model.Post{
			UserID:   f.colaborador.ID,
			Title:    "antigo",
			Content:  "<p>c</p>",
			Category: consts.CategoryNoticia,
		}).Error)
	}
	post, err := f.svc.CreatePost(ctx, f.colaborador.ID, validPost())
	require.NoError(t, err)

	updated, err := f.svc.BackfillAuthorNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	// post já preenchido não é tocado de novo
	updated, err = f.svc.BackfillAuthorNames(ctx)
	require.NoError(t, err)
	assert.Zero(t, updated)

	got, err := f.svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Iara", got.AuthorName)
}

func TestListPostsFiltersByCategory(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreatePost(ctx, f.colaborador.ID, validPost())
	require.NoError(t, err)

	other := validPost()
	other.Category = consts.CategoryLegislacao
	_, err = f.svc.CreatePost(ctx, f.colaborador.ID, other)
	require.NoError(t, err)

	page, err := f.svc.ListPosts(ctx, &dto.PostListDTO{Category: consts.CategoryLegislacao, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, consts.CategoryLegislacao, page.Items[0].Category)

	_, err = f.svc.ListPosts(ctx, &dto.PostListDTO{Category: "inexistente", Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}
