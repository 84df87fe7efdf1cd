package repository

import (
	"PortalPiloto/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	ListNotifiableEmails(ctx context.Context) ([]string, error)
	// UpsertByEmail insere o usuário se o e-mail ainda não existir e retorna a
	// linha vigente. O índice único em users.email garante idempotência mesmo
	// sob corrida.
	UpsertByEmail(ctx context.Context, user *model.User) (*model.User, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Omit("UserRoles").Save(user).Error
}

func (s *UserRepoImpl) ListNotifiableEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("notify_news = ?", true).
		Pluck("email", &emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func (s *UserRepoImpl) UpsertByEmail(ctx context.Context, user *model.User) (*model.User, error) {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}

	return s.GetUserByEmail(ctx, user.Email)
}
