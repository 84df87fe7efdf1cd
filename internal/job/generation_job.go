package job

import (
	"PortalPiloto/internal/pkg/logger"
	"PortalPiloto/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// GenerationJob verifica periodicamente se há geração automática vencida.
// A decisão de gerar ou não fica no serviço, o job só dá o tique.
type GenerationJob struct {
	generationSvc service.GenerationService
}

func NewGenerationJob(generationSvc service.GenerationService) *GenerationJob {
	return &GenerationJob{generationSvc: generationSvc}
}

func (s *GenerationJob) Run() {
	traceID := "job-generation-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	post, err := s.generationSvc.RunScheduled(ctx, time.Now())
	if err != nil {
		log.ErrorContext(ctx, "GenerationJob falhou", "err", err)
		return
	}
	if post == nil {
		return
	}
	log.InfoContext(ctx, "GenerationJob publicou conteúdo", "post_id", post.ID, "title", post.Title)
}
