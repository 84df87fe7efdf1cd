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

type rolesFixture struct {
	svc   UserRolesService
	admin *model.User
	user  *model.User
}

func newRolesFixture(t *testing.T) *rolesFixture {
	t.Helper()
	db := newTestDB(t)
	svc := NewUserRolesService(
		repository.NewUserRepo(db),
		repository.NewRoleRepository(db),
		repository.NewUserRolesRepo(db),
	)
	return &rolesFixture{
		svc:   svc,
		admin: createTestUser(t, db, "Gui", "gui@example.com", consts.RoleAdmin),
		user:  createTestUser(t, db, "Hugo", "hugo@example.com", consts.RoleUsuario),
	}
}

func TestPromoteToColaborador(t *testing.T) {
	f := newRolesFixture(t)
	ctx := context.Background()

	err := f.svc.SetUserRole(ctx, f.admin.ID, &dto.RoleChangeDTO{
		UserID: f.user.ID,
		Role:   consts.RoleColaborador,
	})
	require.NoError(t, err)

	roles, err := f.svc.GetUserRoles(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, consts.RoleColaborador, roles[0].Name)
}

func TestDemoteBackToUsuario(t *testing.T) {
	f := newRolesFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.SetUserRole(ctx, f.admin.ID, &dto.RoleChangeDTO{
		UserID: f.user.ID, Role: consts.RoleColaborador,
	}))
	require.NoError(t, f.svc.SetUserRole(ctx, f.admin.ID, &dto.RoleChangeDTO{
		UserID: f.user.ID, Role: consts.RoleUsuario,
	}))

	roles, err := f.svc.GetUserRoles(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, consts.RoleUsuario, roles[0].Name)
}

func TestAdminCannotChangeOwnRole(t *testing.T) {
	f := newRolesFixture(t)

	err := f.svc.SetUserRole(context.Background(), f.admin.ID, &dto.RoleChangeDTO{
		UserID: f.admin.ID,
		Role:   consts.RoleUsuario,
	})
	assert.ErrorIs(t, err, ErrAutoRebaixamento)

	// papel do admin permanece intacto
	roles, err := f.svc.GetUserRoles(context.Background(), f.admin.ID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, consts.RoleAdmin, roles[0].Name)
}

func TestSetUnknownRole(t *testing.T) {
	f := newRolesFixture(t)

	err := f.svc.SetUserRole(context.Background(), f.admin.ID, &dto.RoleChangeDTO{
		UserID: f.user.ID,
		Role:   "super-admin",
	})
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestSetRoleUnknownUser(t *testing.T) {
	f := newRolesFixture(t)

	err := f.svc.SetUserRole(context.Background(), f.admin.ID, &dto.RoleChangeDTO{
		UserID: 9999,
		Role:   consts.RoleColaborador,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
