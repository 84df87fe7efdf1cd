package service

import (
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/pkg/database"
	"PortalPiloto/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	roleRepo := repository.NewRoleRepository(db)
	require.NoError(t, roleRepo.EnsureRoles(context.Background(), []string{
		consts.RoleUsuario, consts.RoleColaborador, consts.RoleAdmin,
	}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email, roleName string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: "hash-irrelevante",
	}
	require.NoError(t, db.Create(user).Error)

	var role model.Role
	require.NoError(t, db.Where("name = ?", roleName).First(&role).Error)
	require.NoError(t, db.Create(&model.UserRole{UserID: user.ID, RoleID: role.ID}).Error)
	return user
}
