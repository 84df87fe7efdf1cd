package kafka

import (
	"PortalPiloto/internal/api/config"
	"PortalPiloto/internal/pkg/mailer"
	"PortalPiloto/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager gerencia os consumidores Kafka do portal
type ConsumerManager struct {
	notifyConsumer sarama.ConsumerGroup
	notifyHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager construtor; com Kafka desabilitado retorna nil sem erro
func NewConsumerManager(cfg *config.Config, userRepo repository.UserRepo, mail *mailer.Client) (*ConsumerManager, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}

	saramaCfg := newSaramaConfig(cfg.Kafka)

	notifyConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Kafka.Notify.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		notifyConsumer: notifyConsumer,
		notifyHandler:  NewNotifyHandler(userRepo, mail),
	}, nil
}

// Start consome até o contexto ser cancelado
func (s *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	topic := cfg.Kafka.Notify.Topic

	for {
		if err := s.notifyConsumer.Consume(ctx, []string{topic}, s.notifyHandler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			log.Error("notify consumer error", "err", err)
		}
		if ctx.Err() != nil {
			return s.notifyConsumer.Close()
		}
	}
}
