package kafka

import (
	"PortalPiloto/internal/pkg/mailer"
	"PortalPiloto/internal/repository"
	"context"
	"fmt"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// NotifyHandler entrega e-mails de novo conteúdo aos usuários inscritos
type NotifyHandler struct {
	userRepo repository.UserRepo
	mail     *mailer.Client
}

func NewNotifyHandler(userRepo repository.UserRepo, mail *mailer.Client) *NotifyHandler {
	return &NotifyHandler{
		userRepo: userRepo,
		mail:     mail,
	}
}

func (s *NotifyHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("notify consumer setup")
	return nil
}

func (s *NotifyHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("notify consumer cleanup")
	return nil
}

func (s *NotifyHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-notify consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-notify process batch error", "err", err)
		return err
	}
	return nil
}

func (s *NotifyHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event NewContentEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("unmarshal new content event error", "err", err)
		// payload inválido nunca fica processável, descarta
		return nil
	}

	emails, err := s.userRepo.ListNotifiableEmails(ctx)
	if err != nil {
		return err
	}

	subject := "Novo conteúdo no Portal do Piloto: " + event.Title
	body := fmt.Sprintf("Acabou de sair um novo conteúdo na categoria %s: %s, por %s.",
		event.Category, event.Title, event.AuthorName)

	for _, to := range emails {
		if err := s.mail.Send(ctx, to, subject, body); err != nil {
			// entrega é melhor esforço, registra e segue
			log.ErrorContext(ctx, "Falha ao enviar e-mail de notificação", "to", to, "err", err)
		}
	}

	log.InfoContext(ctx, "Notificação de novo conteúdo processada",
		"post_id", event.PostID, "recipients", len(emails))
	return nil
}
