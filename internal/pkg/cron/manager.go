package cron

import (
	"PortalPiloto/internal/api/config"
	"PortalPiloto/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	generationJob *job.GenerationJob
}

// slogCronLogger adapta o log/slog para o logger do robfig/cron
type slogCronLogger struct{}

func (slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Info(msg, keysAndValues...)
}

func (slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error(msg, append([]interface{}{"err", err}, keysAndValues...)...)
}

func NewCronManager(generationJob *job.GenerationJob) *Manager {
	return &Manager{
		engine: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(slogCronLogger{})),
		),
		generationJob: generationJob,
	}
}

// RegisterJobs registra as tarefas agendadas
func (s *Manager) RegisterJobs() error {
	if config.Cfg != nil && !config.Cfg.Cron.EnableGeneration {
		log.Info("Agendador interno de geração desabilitado")
		return nil
	}
	// o job decide internamente se a geração venceu
	if _, err := s.engine.AddJob("0 */10 * * * *", s.generationJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Engine de tarefas agendadas iniciada")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Engine de tarefas agendadas parada")
	s.engine.Stop()
}
