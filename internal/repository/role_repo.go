package repository

import (
	"PortalPiloto/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type RoleRepo interface {
	GetRoleByName(ctx context.Context, name string) (*model.Role, error)
	EnsureRoles(ctx context.Context, names []string) error
}

type RoleRepoImpl struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepo {
	return &RoleRepoImpl{db: db}
}

func (s *RoleRepoImpl) GetRoleByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// EnsureRoles garante que os papéis fixos do portal existam
func (s *RoleRepoImpl) EnsureRoles(ctx context.Context, names []string) error {
	for _, name := range names {
		var role model.Role
		err := s.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err = s.db.WithContext(ctx).Create(&model.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
