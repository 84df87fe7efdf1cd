package llm

import (
	"PortalPiloto/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrEmptyCompletion serviço respondeu sem conteúdo
var ErrEmptyCompletion = errors.New("serviço de geração retornou resposta vazia")

// TextGenerator abstrai o serviço externo de geração de texto
type TextGenerator interface {
	Generate(ctx context.Context, apiKey, model string, temperature float64, systemPrompt, userPrompt string) (string, error)
}

type openAIGenerator struct{}

// NewGenerator retorna o gerador baseado na API compatível com OpenAI
func NewGenerator() TextGenerator {
	return &openAIGenerator{}
}

func (g *openAIGenerator) Generate(ctx context.Context, apiKey, model string, temperature float64, systemPrompt, userPrompt string) (string, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	var cfg config.LLMConfig
	if config.Cfg != nil {
		cfg = config.Cfg.LLM
	}

	opts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(apiKey),
	}
	if cfg.URL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.URL))
	}
	client, err := openai.New(opts...)
	if err != nil {
		log.ErrorContext(ctx, "Falha ao criar cliente de geração", "err", err)
		return "", err
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	log.InfoContext(ctx, "Requisitando serviço de geração de texto", "model", model)
	resp, err := client.GenerateContent(ctx, messages,
		llms.WithModel(model),
		llms.WithTemperature(temperature),
	)
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Content, nil
}
