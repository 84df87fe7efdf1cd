package service

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/repository"
	"context"
)

type DonationService interface {
	GetSettings(ctx context.Context) (*model.DonationSetting, error)
	UpdateSettings(ctx context.Context, d *dto.DonationDTO) (*model.DonationSetting, error)
}

type DonationServiceImpl struct {
	donationRepo repository.DonationRepo
}

func NewDonationService(donationRepo repository.DonationRepo) DonationService {
	return &DonationServiceImpl{donationRepo: donationRepo}
}

func (s *DonationServiceImpl) GetSettings(ctx context.Context) (*model.DonationSetting, error) {
	setting, err := s.donationRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = &model.DonationSetting{}
	}
	return setting, nil
}

func (s *DonationServiceImpl) UpdateSettings(ctx context.Context, d *dto.DonationDTO) (*model.DonationSetting, error) {
	setting, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if d.Enabled != nil {
		setting.Enabled = *d.Enabled
	}
	if d.PixKey != nil {
		setting.PixKey = *d.PixKey
	}
	if d.Message != nil {
		setting.Message = *d.Message
	}
	if err = s.donationRepo.Save(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}
