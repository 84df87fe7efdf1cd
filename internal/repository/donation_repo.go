package repository

import (
	"PortalPiloto/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// DonationSettingID a configuração de doação é uma linha única
const DonationSettingID = 1

type DonationRepo interface {
	Get(ctx context.Context) (*model.DonationSetting, error)
	Save(ctx context.Context, setting *model.DonationSetting) error
}

type DonationRepoImpl struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepo {
	return &DonationRepoImpl{db: db}
}

func (s *DonationRepoImpl) Get(ctx context.Context) (*model.DonationSetting, error) {
	var setting model.DonationSetting
	err := s.db.WithContext(ctx).First(&setting, DonationSettingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (s *DonationRepoImpl) Save(ctx context.Context, setting *model.DonationSetting) error {
	setting.ID = DonationSettingID
	return s.db.WithContext(ctx).Save(setting).Error
}
