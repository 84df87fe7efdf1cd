package repository

import (
	"PortalPiloto/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// GenerationConfigID a configuração é uma linha única
const GenerationConfigID = 1

type GenerationConfigRepo interface {
	Get(ctx context.Context) (*model.GenerationConfig, error)
	Save(ctx context.Context, cfg *model.GenerationConfig) error
	// CommitGeneratedPost grava o post gerado e o last_run_at na mesma
	// transação, de modo que um crash não deixe post sem marcador.
	CommitGeneratedPost(ctx context.Context, post *model.Post, ranAt time.Time) error
}

type GenerationConfigRepoImpl struct {
	db *gorm.DB
}

func NewGenerationConfigRepo(db *gorm.DB) GenerationConfigRepo {
	return &GenerationConfigRepoImpl{db: db}
}

func (s *GenerationConfigRepoImpl) Get(ctx context.Context) (*model.GenerationConfig, error) {
	var cfg model.GenerationConfig
	err := s.db.WithContext(ctx).First(&cfg, GenerationConfigID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (s *GenerationConfigRepoImpl) Save(ctx context.Context, cfg *model.GenerationConfig) error {
	cfg.ID = GenerationConfigID
	return s.db.WithContext(ctx).Save(cfg).Error
}

func (s *GenerationConfigRepoImpl) CommitGeneratedPost(ctx context.Context, post *model.Post, ranAt time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return tx.Model(&model.GenerationConfig{}).
			Where("id = ?", GenerationConfigID).
			Update("last_run_at", ranAt).Error
	})
}
