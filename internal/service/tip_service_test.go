package service

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tipFixture struct {
	author *model.User
	admin  *model.User
}

func (f *tipFixture) authorID() uint64 { return f.author.ID }
func (f *tipFixture) adminID() uint64  { return f.admin.ID }

func newTipService(t *testing.T) (TipService, *tipFixture) {
	t.Helper()
	db := newTestDB(t)
	fixture := &tipFixture{
		author: createTestUser(t, db, "Ana", "ana@example.com", consts.RoleUsuario),
		admin:  createTestUser(t, db, "Beto", "beto@example.com", consts.RoleAdmin),
	}
	return NewTipService(repository.NewTipRepository(db), nil), fixture
}

func TestSubmitTipStartsPending(t *testing.T) {
	svc, f := newTipService(t)
	ctx := context.Background()

	tip, err := svc.SubmitTip(ctx, f.authorID(), &dto.TipCreateDTO{
		Title:    "Cheque as hélices",
		Content:  "<p>Antes de decolar, confira o aperto.</p>",
		Category: consts.CategoryDica,
	})
	require.NoError(t, err)
	assert.Equal(t, consts.TipStatusPending, tip.Status)
}

func TestSubmitTipRejectsUnknownCategory(t *testing.T) {
	svc, f := newTipService(t)

	_, err := svc.SubmitTip(context.Background(), f.authorID(), &dto.TipCreateDTO{
		Title:    "x",
		Content:  "<p>y</p>",
		Category: "memes",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestSubmitTipSanitizesContent(t *testing.T) {
	svc, f := newTipService(t)

	tip, err := svc.SubmitTip(context.Background(), f.authorID(), &dto.TipCreateDTO{
		Title:   "xss",
		Content: "<p>ok</p><script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, tip.Content, "script")
}

func TestSubmitTipRejectsEmptyAfterSanitize(t *testing.T) {
	svc, f := newTipService(t)

	_, err := svc.SubmitTip(context.Background(), f.authorID(), &dto.TipCreateDTO{
		Title:   "vazio",
		Content: "<script>alert(1)</script>",
	})
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestSetStatusOnlyFromPending(t *testing.T) {
	svc, f := newTipService(t)
	ctx := context.Background()

	tip, err := svc.SubmitTip(ctx, f.authorID(), &dto.TipCreateDTO{
		Title: "t", Content: "<p>c</p>",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, f.adminID(), tip.ID, consts.TipStatusApproved))

	// decisão é definitiva
	err = svc.SetStatus(ctx, f.adminID(), tip.ID, consts.TipStatusRejected)
	assert.ErrorIs(t, err, ErrTipAlreadyDecided)
}

func TestSetStatusRejectsInvalidTarget(t *testing.T) {
	svc, f := newTipService(t)
	ctx := context.Background()

	tip, err := svc.SubmitTip(ctx, f.authorID(), &dto.TipCreateDTO{
		Title: "t", Content: "<p>c</p>",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetStatus(ctx, f.adminID(), tip.ID, consts.TipStatusPending), ErrInvalidStatus)
	assert.ErrorIs(t, svc.SetStatus(ctx, f.adminID(), tip.ID, "publicada"), ErrInvalidStatus)
}

func TestSetStatusUnknownTip(t *testing.T) {
	svc, f := newTipService(t)
	err := svc.SetStatus(context.Background(), f.adminID(), 9999, consts.TipStatusApproved)
	assert.ErrorIs(t, err, ErrTipNotFound)
}

func TestTipVisibilityRules(t *testing.T) {
	svc, f := newTipService(t)
	ctx := context.Background()

	tip, err := svc.SubmitTip(ctx, f.authorID(), &dto.TipCreateDTO{
		Title: "pendente", Content: "<p>c</p>",
	})
	require.NoError(t, err)

	// autor enxerga a própria dica pendente
	_, err = svc.GetTip(ctx, f.authorID(), []string{consts.RoleUsuario}, tip.ID)
	assert.NoError(t, err)

	// admin enxerga qualquer dica
	_, err = svc.GetTip(ctx, f.adminID(), []string{consts.RoleAdmin}, tip.ID)
	assert.NoError(t, err)

	// terceiros não enxergam dica não aprovada
	_, err = svc.GetTip(ctx, 0, nil, tip.ID)
	assert.ErrorIs(t, err, ErrTipNotFound)

	// depois de aprovada, fica pública
	require.NoError(t, svc.SetStatus(ctx, f.adminID(), tip.ID, consts.TipStatusApproved))
	_, err = svc.GetTip(ctx, 0, nil, tip.ID)
	assert.NoError(t, err)
}

func TestListApprovedExcludesPending(t *testing.T) {
	svc, f := newTipService(t)
	ctx := context.Background()

	approved, err := svc.SubmitTip(ctx, f.authorID(), &dto.TipCreateDTO{Title: "a", Content: "<p>a</p>"})
	require.NoError(t, err)
	_, err = svc.SubmitTip(ctx, f.authorID(), &dto.TipCreateDTO{Title: "b", Content: "<p>b</p>"})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, f.adminID(), approved.ID, consts.TipStatusApproved))

	page, err := svc.ListApproved(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, approved.ID, page.Items[0].ID)
	assert.Equal(t, int64(1), page.Total)
}
