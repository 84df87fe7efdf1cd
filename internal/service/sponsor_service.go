package service

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/repository"
	"context"
)

type SponsorService interface {
	CreateSponsor(ctx context.Context, d *dto.SponsorDTO) (*model.Sponsor, error)
	ListSponsors(ctx context.Context, onlyActive bool) ([]*model.Sponsor, error)
	UpdateSponsor(ctx context.Context, id uint64, d *dto.SponsorDTO) (*model.Sponsor, error)
	DeleteSponsor(ctx context.Context, id uint64) error
}

type SponsorServiceImpl struct {
	sponsorRepo repository.SponsorRepo
}

func NewSponsorService(sponsorRepo repository.SponsorRepo) SponsorService {
	return &SponsorServiceImpl{sponsorRepo: sponsorRepo}
}

func (s *SponsorServiceImpl) CreateSponsor(ctx context.Context, d *dto.SponsorDTO) (*model.Sponsor, error) {
	sponsor := &model.Sponsor{
		Name:     d.Name,
		LogoKey:  d.LogoKey,
		LinkURL:  d.LinkURL,
		Position: d.Position,
		Active:   true,
	}
	if d.Active != nil {
		sponsor.Active = *d.Active
	}
	if err := s.sponsorRepo.CreateSponsor(ctx, sponsor); err != nil {
		return nil, err
	}
	return sponsor, nil
}

func (s *SponsorServiceImpl) ListSponsors(ctx context.Context, onlyActive bool) ([]*model.Sponsor, error) {
	return s.sponsorRepo.ListSponsors(ctx, onlyActive)
}

func (s *SponsorServiceImpl) UpdateSponsor(ctx context.Context, id uint64, d *dto.SponsorDTO) (*model.Sponsor, error) {
	sponsor, err := s.sponsorRepo.GetSponsor(ctx, id)
	if err != nil {
		return nil, err
	}
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	sponsor.Name = d.Name
	sponsor.LogoKey = d.LogoKey
	sponsor.LinkURL = d.LinkURL
	sponsor.Position = d.Position
	if d.Active != nil {
		sponsor.Active = *d.Active
	}
	if err = s.sponsorRepo.UpdateSponsor(ctx, sponsor); err != nil {
		return nil, err
	}
	return sponsor, nil
}

func (s *SponsorServiceImpl) DeleteSponsor(ctx context.Context, id uint64) error {
	sponsor, err := s.sponsorRepo.GetSponsor(ctx, id)
	if err != nil {
		return err
	}
	if sponsor == nil {
		return ErrSponsorNotFound
	}
	return s.sponsorRepo.DeleteSponsor(ctx, id)
}
