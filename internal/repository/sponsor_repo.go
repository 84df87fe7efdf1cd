package repository

import (
	"PortalPiloto/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SponsorRepo interface {
	CreateSponsor(ctx context.Context, sponsor *model.Sponsor) error
	GetSponsor(ctx context.Context, id uint64) (*model.Sponsor, error)
	ListSponsors(ctx context.Context, onlyActive bool) ([]*model.Sponsor, error)
	UpdateSponsor(ctx context.Context, sponsor *model.Sponsor) error
	DeleteSponsor(ctx context.Context, id uint64) error
}

type SponsorRepoImpl struct {
	db *gorm.DB
}

func NewSponsorRepository(db *gorm.DB) SponsorRepo {
	return &SponsorRepoImpl{db: db}
}

func (s *SponsorRepoImpl) CreateSponsor(ctx context.Context, sponsor *model.Sponsor) error {
	return s.db.WithContext(ctx).Create(sponsor).Error
}

func (s *SponsorRepoImpl) GetSponsor(ctx context.Context, id uint64) (*model.Sponsor, error) {
	var sponsor model.Sponsor
	err := s.db.WithContext(ctx).First(&sponsor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sponsor, nil
}

func (s *SponsorRepoImpl) ListSponsors(ctx context.Context, onlyActive bool) ([]*model.Sponsor, error) {
	query := s.db.WithContext(ctx).Model(&model.Sponsor{})
	if onlyActive {
		query = query.Where("active = ?", true)
	}

	var sponsors []*model.Sponsor
	err := query.Order("position ASC, id ASC").Find(&sponsors).Error
	if err != nil {
		return nil, err
	}
	return sponsors, nil
}

func (s *SponsorRepoImpl) UpdateSponsor(ctx context.Context, sponsor *model.Sponsor) error {
	return s.db.WithContext(ctx).Save(sponsor).Error
}

func (s *SponsorRepoImpl) DeleteSponsor(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Sponsor{}, id).Error
}
