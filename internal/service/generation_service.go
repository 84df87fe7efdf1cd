package service

import (
	"PortalPiloto/internal/api/config"
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/pkg/kafka"
	"PortalPiloto/internal/pkg/llm"
	"PortalPiloto/internal/pkg/redis"
	"PortalPiloto/internal/pkg/security"
	"PortalPiloto/internal/pkg/util"
	"PortalPiloto/internal/repository"
	"context"
	log "log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const generationLockTTL = 10 * time.Minute

type GenerationService interface {
	GetConfig(ctx context.Context) (*dto.GenerationConfigViewDTO, error)
	UpdateConfig(ctx context.Context, d *dto.GenerationConfigDTO) (*dto.GenerationConfigViewDTO, error)
	// RunScheduled executa o pipeline respeitando enabled, frequência e
	// horário. Retorna (nil, nil) quando não há nada a fazer.
	RunScheduled(ctx context.Context, now time.Time) (*dto.PostDTO, error)
	// RunManual executa o pipeline com os parâmetros informados pelo admin,
	// ignorando o agendamento.
	RunManual(ctx context.Context, d *dto.ManualGenerationDTO) (*dto.PostDTO, error)
}

type GenerationServiceImpl struct {
	configRepo    repository.GenerationConfigRepo
	userRepo      repository.UserRepo
	roleRepo      repository.RoleRepo
	userRolesRepo repository.UserRolesRepo
	generator     llm.TextGenerator
	producer      kafka.Producer
}

func NewGenerationService(
	configRepo repository.GenerationConfigRepo,
	userRepo repository.UserRepo,
	roleRepo repository.RoleRepo,
	userRolesRepo repository.UserRolesRepo,
	generator llm.TextGenerator,
	producer kafka.Producer,
) GenerationService {
	return &GenerationServiceImpl{
		configRepo:    configRepo,
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		userRolesRepo: userRolesRepo,
		generator:     generator,
		producer:      producer,
	}
}

// generationParams parâmetros efetivos de uma execução
type generationParams struct {
	model        string
	temperature  float64
	categories   []string
	topics       string
	instructions string
	template     string
}

func (s *GenerationServiceImpl) GetConfig(ctx context.Context) (*dto.GenerationConfigViewDTO, error) {
	cfg, err := s.loadOrDefault(ctx)
	if err != nil {
		return nil, err
	}
	return configToView(cfg), nil
}

func (s *GenerationServiceImpl) UpdateConfig(ctx context.Context, d *dto.GenerationConfigDTO) (*dto.GenerationConfigViewDTO, error) {
	cfg, err := s.loadOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	if d.Temperature != nil {
		if *d.Temperature < 0 || *d.Temperature > 2 {
			return nil, ErrInvalidTemp
		}
		cfg.Temperature = *d.Temperature
	}
	if d.ActiveCategories != nil {
		for _, c := range d.ActiveCategories {
			if !consts.SetCategories[c] {
				return nil, ErrInvalidCategory
			}
		}
		cfg.ActiveCategories = strings.Join(d.ActiveCategories, ",")
	}
	if d.FrequencyDays != nil {
		if *d.FrequencyDays < 1 {
			return nil, ErrGenerationConfig
		}
		cfg.FrequencyDays = *d.FrequencyDays
	}
	if d.TimeOfDay != nil {
		if *d.TimeOfDay != "" {
			if _, err = time.Parse("15:04", *d.TimeOfDay); err != nil {
				return nil, ErrGenerationConfig
			}
		}
		cfg.TimeOfDay = *d.TimeOfDay
	}
	if d.Enabled != nil {
		cfg.Enabled = *d.Enabled
	}
	if d.ApiKey != nil {
		cfg.ApiKey = *d.ApiKey
	}
	if d.Model != nil {
		cfg.Model = *d.Model
	}
	if d.Topics != nil {
		cfg.Topics = *d.Topics
	}
	if d.Instructions != nil {
		cfg.Instructions = *d.Instructions
	}
	if d.PromptTemplate != nil {
		cfg.PromptTemplate = *d.PromptTemplate
	}

	if err = s.configRepo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return configToView(cfg), nil
}

func (s *GenerationServiceImpl) RunScheduled(ctx context.Context, now time.Time) (*dto.PostDTO, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	if !due(cfg, now) {
		return nil, nil
	}

	params := &generationParams{
		model:        cfg.Model,
		temperature:  cfg.Temperature,
		categories:   splitCategories(cfg.ActiveCategories),
		topics:       cfg.Topics,
		instructions: cfg.Instructions,
		template:     cfg.PromptTemplate,
	}
	return s.run(ctx, cfg, params, now)
}

func (s *GenerationServiceImpl) RunManual(ctx context.Context, d *dto.ManualGenerationDTO) (*dto.PostDTO, error) {
	if d.Temperature < 0 || d.Temperature > 2 {
		return nil, ErrInvalidTemp
	}

	cfg, err := s.loadOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	params := &generationParams{
		model:        d.Model,
		temperature:  d.Temperature,
		categories:   splitCategories(cfg.ActiveCategories),
		topics:       strings.Join(d.Topics, ", "),
		instructions: d.Instructions,
		template:     cfg.PromptTemplate,
	}
	return s.run(ctx, cfg, params, time.Now())
}

// due informa se a próxima execução agendada já venceu
func due(cfg *model.GenerationConfig, now time.Time) bool {
	if cfg.TimeOfDay != "" {
		if t, err := time.Parse("15:04", cfg.TimeOfDay); err == nil {
			startOfDay := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
			if now.Before(startOfDay) {
				return false
			}
		}
	}

	if cfg.LastRunAt == nil {
		return true
	}
	frequency := time.Duration(cfg.FrequencyDays) * 24 * time.Hour
	if frequency <= 0 {
		frequency = 24 * time.Hour
	}
	return now.Sub(*cfg.LastRunAt) >= frequency
}

func (s *GenerationServiceImpl) run(ctx context.Context, cfg *model.GenerationConfig, params *generationParams, now time.Time) (*dto.PostDTO, error) {
	if params.model == "" && config.Cfg != nil {
		params.model = config.Cfg.LLM.Model
	}
	if params.model == "" || strings.TrimSpace(params.topics) == "" || strings.TrimSpace(params.instructions) == "" {
		return nil, ErrGenerationConfig
	}

	apiKey := resolveApiKey(cfg)
	if apiKey == "" {
		return nil, ErrNoApiKey
	}

	// uma execução por vez, mesmo com réplicas concorrentes
	lockValue := uuid.NewString()
	acquired, err := redis.TryLock(ctx, consts.GenerationLockKey, lockValue, generationLockTTL, 0)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrGenerationBusy
	}
	defer redis.UnLock(ctx, consts.GenerationLockKey, lockValue)

	category := pickCategory(params.categories)
	userPrompt := composePrompt(params, category)

	html, err := s.generator.Generate(ctx, apiKey, params.model, params.temperature, llm.Directive(), userPrompt)
	if err != nil {
		log.ErrorContext(ctx, "Serviço de geração falhou", "model", params.model, "err", err)
		return nil, ErrLLMFailed
	}
	html = strings.TrimSpace(html)
	if html == "" {
		return nil, ErrLLMFailed
	}

	author, err := s.systemAuthor(ctx)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID:     author.ID,
		AuthorName: author.Name,
		Title:      util.ExtractTitle(html, now),
		Content:    html,
		Category:   category,
	}
	if err = s.configRepo.CommitGeneratedPost(ctx, post, now); err != nil {
		return nil, err
	}

	_ = redis.DeleteByPrefix(ctx, consts.PublicPostsKey)
	if s.producer != nil {
		event := &kafka.NewContentEvent{
			PostID:     post.ID,
			Title:      post.Title,
			Category:   post.Category,
			AuthorName: post.AuthorName,
			CreatedAt:  post.CreatedAt,
		}
		if err = s.producer.PublishNewContent(ctx, event); err != nil {
			log.ErrorContext(ctx, "Falha ao publicar evento de novo conteúdo", "post_id", post.ID, "err", err)
		}
	}

	log.InfoContext(ctx, "Conteúdo gerado publicado", "post_id", post.ID, "category", category, "title", post.Title)
	return postToDTO(post), nil
}

// systemAuthor garante a conta do autor automático com o papel de
// colaborador. A credencial aleatória nunca é usada para login interativo.
func (s *GenerationServiceImpl) systemAuthor(ctx context.Context) (*model.User, error) {
	passwordHash, err := security.HashPassword(util.RandomCredential())
	if err != nil {
		return nil, err
	}
	author, err := s.userRepo.UpsertByEmail(ctx, &model.User{
		Name:     consts.SystemAuthorName,
		Email:    consts.SystemAuthorEmail,
		Password: passwordHash,
	})
	if err != nil {
		return nil, err
	}

	role, err := s.roleRepo.GetRoleByName(ctx, consts.RoleColaborador)
	if err != nil {
		return nil, err
	}
	hasRole, err := s.userRolesRepo.GetUserHasRole(ctx, author.ID, role.ID)
	if err != nil {
		return nil, err
	}
	if !hasRole {
		if err = s.userRolesRepo.AddRoleToUser(ctx, author.ID, role.ID); err != nil {
			return nil, err
		}
	}
	return author, nil
}

func (s *GenerationServiceImpl) loadOrDefault(ctx context.Context) (*model.GenerationConfig, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &model.GenerationConfig{
			Temperature:   0.7,
			FrequencyDays: 1,
		}
	}
	return cfg, nil
}

func resolveApiKey(cfg *model.GenerationConfig) string {
	if cfg.ApiKey != "" {
		return cfg.ApiKey
	}
	if config.Cfg != nil && config.Cfg.LLM.ApiKey != "" {
		return config.Cfg.LLM.ApiKey
	}
	return os.Getenv(consts.EnvLLMAPIKey)
}

func splitCategories(csv string) []string {
	var categories []string
	for _, c := range strings.Split(csv, ",") {
		c = strings.TrimSpace(c)
		if consts.SetCategories[c] {
			categories = append(categories, c)
		}
	}
	return categories
}

func pickCategory(categories []string) string {
	if len(categories) == 0 {
		return consts.CategoryNoticia
	}
	return categories[rand.Intn(len(categories))]
}

func composePrompt(params *generationParams, category string) string {
	if params.template != "" {
		replacer := strings.NewReplacer(
			"{categoria}", category,
			"{topicos}", params.topics,
			"{instrucoes}", params.instructions,
		)
		return replacer.Replace(params.template)
	}

	var b strings.Builder
	b.WriteString("Escreva um artigo da categoria \"")
	b.WriteString(category)
	b.WriteString("\" sobre um dos temas a seguir: ")
	b.WriteString(params.topics)
	b.WriteString(".\n\nInstruções adicionais: ")
	b.WriteString(params.instructions)
	return b.String()
}

func configToView(cfg *model.GenerationConfig) *dto.GenerationConfigViewDTO {
	return &dto.GenerationConfigViewDTO{
		Enabled:          cfg.Enabled,
		HasApiKey:        cfg.ApiKey != "",
		Model:            cfg.Model,
		Temperature:      cfg.Temperature,
		ActiveCategories: splitCategories(cfg.ActiveCategories),
		Topics:           cfg.Topics,
		Instructions:     cfg.Instructions,
		PromptTemplate:   cfg.PromptTemplate,
		FrequencyDays:    cfg.FrequencyDays,
		TimeOfDay:        cfg.TimeOfDay,
		LastRunAt:        cfg.LastRunAt,
	}
}
