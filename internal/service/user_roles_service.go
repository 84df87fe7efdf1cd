package service

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/pkg/security"
	"PortalPiloto/internal/repository"
	"context"
)

type UserRolesService interface {
	GetRoles(ctx context.Context) ([]*model.Role, error)
	GetUserRoles(ctx context.Context, userID uint64) ([]*model.Role, error)
	SetUserRole(ctx context.Context, actorID uint64, d *dto.RoleChangeDTO) error
}

type UserRolesServiceImpl struct {
	userRepo      repository.UserRepo
	roleRepo      repository.RoleRepo
	userRolesRepo repository.UserRolesRepo
}

func NewUserRolesService(userRepo repository.UserRepo, roleRepo repository.RoleRepo, userRolesRepo repository.UserRolesRepo) UserRolesService {
	return &UserRolesServiceImpl{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		userRolesRepo: userRolesRepo,
	}
}

func (s *UserRolesServiceImpl) GetRoles(ctx context.Context) ([]*model.Role, error) {
	return s.userRolesRepo.GetRoles(ctx)
}

func (s *UserRolesServiceImpl) GetUserRoles(ctx context.Context, userID uint64) ([]*model.Role, error) {
	return s.userRolesRepo.GetUserRoles(ctx, userID)
}

// SetUserRole define o papel de um usuário. O administrador nunca altera o
// próprio papel, o que evita um portal sem nenhum admin.
func (s *UserRolesServiceImpl) SetUserRole(ctx context.Context, actorID uint64, d *dto.RoleChangeDTO) error {
	if actorID == d.UserID {
		return ErrAutoRebaixamento
	}
	if security.Level(d.Role) == 0 {
		return ErrRoleNotFound
	}

	target, err := s.userRepo.GetUserByID(ctx, d.UserID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	role, err := s.roleRepo.GetRoleByName(ctx, d.Role)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}

	current, err := s.userRolesRepo.GetUserRoles(ctx, d.UserID)
	if err != nil {
		return err
	}
	for _, r := range current {
		if r.ID == role.ID {
			continue
		}
		if err = s.userRolesRepo.DeleteRoleFromUser(ctx, d.UserID, r.ID); err != nil {
			return err
		}
	}

	has, err := s.userRolesRepo.GetUserHasRole(ctx, d.UserID, role.ID)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	return s.userRolesRepo.AddRoleToUser(ctx, d.UserID, role.ID)
}
