package service

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/pkg/redis"
	"PortalPiloto/internal/pkg/security"
	"PortalPiloto/internal/repository"
	"context"
)

type UserService interface {
	Register(ctx context.Context, d *dto.RegisterDTO) error
	Login(ctx context.Context, d *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUserInfo(ctx context.Context, id uint64, d *dto.UpdateUserDTO) error
	RoleNames(ctx context.Context, userID uint64) ([]string, error)
}

type UserServiceImpl struct {
	userRepo      repository.UserRepo
	roleRepo      repository.RoleRepo
	userRolesRepo repository.UserRolesRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo, userRolesRepo repository.UserRolesRepo) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		userRolesRepo: userRolesRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, d *dto.RegisterDTO) error {
	found, err := s.userRepo.GetUserByEmail(ctx, d.Email)
	if err != nil {
		return err
	}
	if found != nil {
		return ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(d.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:       d.Name,
		Email:      d.Email,
		Password:   passwordHash,
		NotifyNews: d.NotifyNews,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return err
	}

	// cadastro novo começa no papel base
	role, err := s.roleRepo.GetRoleByName(ctx, consts.RoleUsuario)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}
	return s.userRolesRepo.AddRoleToUser(ctx, user.ID, role.ID)
}

func (s *UserServiceImpl) Login(ctx context.Context, d *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, d.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrWrongCredential
	}

	if err = security.CheckPasswordHash(d.Password, user.Password); err != nil {
		return nil, ErrWrongCredential
	}

	roles, err := s.RoleNames(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token, err := security.GenerateToken(user.ID, roles)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResultDTO{
		Token: token,
		User: &dto.UserDTO{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Roles:      roles,
			NotifyNews: user.NotifyNews,
		},
	}, nil
}

// Logout invalida o token colocando a assinatura na blacklist até expirar
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	roles, err := s.RoleNames(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.UserDTO{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Roles:      roles,
		NotifyNews: user.NotifyNews,
	}, nil
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, d *dto.UpdateUserDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if d.Name != nil {
		user.Name = *d.Name
	}
	if d.NotifyNews != nil {
		user.NotifyNews = *d.NotifyNews
	}
	return s.userRepo.UpdateUser(ctx, user)
}

// RoleNames retorna os nomes dos papéis de um usuário
func (s *UserServiceImpl) RoleNames(ctx context.Context, userID uint64) ([]string, error) {
	roles, err := s.userRolesRepo.GetUserRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}
