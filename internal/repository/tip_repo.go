package repository

import (
	"PortalPiloto/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TipRepo interface {
	CreateTip(ctx context.Context, tip *model.Tip) error
	GetTip(ctx context.Context, id uint64) (*model.Tip, error)
	ListTips(ctx context.Context, status string, page, pageSize int) ([]*model.Tip, int64, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
	DeleteTip(ctx context.Context, id uint64) error
}

type TipRepoImpl struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) TipRepo {
	return &TipRepoImpl{db: db}
}

func (s *TipRepoImpl) CreateTip(ctx context.Context, tip *model.Tip) error {
	return s.db.WithContext(ctx).Create(tip).Error
}

func (s *TipRepoImpl) GetTip(ctx context.Context, id uint64) (*model.Tip, error) {
	var tip model.Tip
	err := s.db.WithContext(ctx).Preload("User").First(&tip, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tip, nil
}

func (s *TipRepoImpl) ListTips(ctx context.Context, status string, page, pageSize int) ([]*model.Tip, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Tip{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tips []*model.Tip
	err := query.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tips).Error
	if err != nil {
		return nil, 0, err
	}
	return tips, total, nil
}

func (s *TipRepoImpl) UpdateStatus(ctx context.Context, id uint64, status string) error {
	return s.db.WithContext(ctx).
		Model(&model.Tip{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (s *TipRepoImpl) DeleteTip(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Tip{}, id).Error
}
