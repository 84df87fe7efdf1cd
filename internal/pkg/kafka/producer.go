package kafka

import (
	"PortalPiloto/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Producer publica eventos de novo conteúdo
type Producer interface {
	PublishNewContent(ctx context.Context, event *NewContentEvent) error
	Close() error
}

type producerImpl struct {
	sp    sarama.SyncProducer
	topic string
}

// noopProducer usado quando o Kafka está desabilitado na configuração
type noopProducer struct{}

func (noopProducer) PublishNewContent(context.Context, *NewContentEvent) error { return nil }
func (noopProducer) Close() error                                              { return nil }

// NewProducer cria o produtor síncrono; com Kafka desabilitado retorna um no-op
func NewProducer(cfg *config.Config) (Producer, error) {
	if !cfg.Kafka.Enabled {
		log.Info("Kafka desabilitado, eventos de novo conteúdo não serão publicados")
		return noopProducer{}, nil
	}

	sp, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, errors.Wrap(err, "kafka: falha ao criar produtor")
	}
	return &producerImpl{sp: sp, topic: cfg.Kafka.Notify.Topic}, nil
}

func (s *producerImpl) PublishNewContent(ctx context.Context, event *NewContentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "kafka: falha ao serializar evento")
	}

	_, _, err = s.sp.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return errors.Wrap(err, "kafka: falha ao publicar evento")
	}

	log.InfoContext(ctx, "Evento de novo conteúdo publicado", "post_id", event.PostID)
	return nil
}

func (s *producerImpl) Close() error {
	return s.sp.Close()
}
