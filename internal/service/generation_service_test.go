package service

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubGenerator struct {
	html       string
	err        error
	calls      int
	lastModel  string
	lastPrompt string
}

func (g *stubGenerator) Generate(_ context.Context, _, model string, _ float64, _, userPrompt string) (string, error) {
	g.calls++
	g.lastModel = model
	g.lastPrompt = userPrompt
	if g.err != nil {
		return "", g.err
	}
	return g.html, nil
}

type generationFixture struct {
	db         *gorm.DB
	configRepo repository.GenerationConfigRepo
	generator  *stubGenerator
	svc        GenerationService
}

func newGenerationFixture(t *testing.T) *generationFixture {
	t.Helper()
	db := newTestDB(t)
	generator := &stubGenerator{html: "<h1>Voo noturno com drones</h1><p>corpo</p>"}
	configRepo := repository.NewGenerationConfigRepo(db)
	svc := NewGenerationService(
		configRepo,
		repository.NewUserRepo(db),
		repository.NewRoleRepository(db),
		repository.NewUserRolesRepo(db),
		generator,
		nil,
	)
	return &generationFixture{db: db, configRepo: configRepo, generator: generator, svc: svc}
}

func (f *generationFixture) saveConfig(t *testing.T, cfg *model.GenerationConfig) {
	t.Helper()
	require.NoError(t, f.configRepo.Save(context.Background(), cfg))
}

func enabledConfig() *model.GenerationConfig {
	return &model.GenerationConfig{
		Enabled:          true,
		ApiKey:           "sk-teste",
		Model:            "gpt-4o-mini",
		Temperature:      0.7,
		ActiveCategories: consts.CategoryDica,
		Topics:           "baterias, vento forte",
		Instructions:     "tom acessível",
		FrequencyDays:    1,
	}
}

func TestRunScheduledPublishesPost(t *testing.T) {
	f := newGenerationFixture(t)
	f.saveConfig(t, enabledConfig())
	ctx := context.Background()

	post, err := f.svc.RunScheduled(ctx, time.Now())
	require.NoError(t, err)
	require.NotNil(t, post)

	assert.Equal(t, "Voo noturno com drones", post.Title)
	assert.Equal(t, consts.CategoryDica, post.Category)
	assert.Equal(t, consts.SystemAuthorName, post.AuthorName)
	assert.Equal(t, 1, f.generator.calls)

	// autor do sistema criado com o e-mail reservado e papel de colaborador
	var author model.User
	require.NoError(t, f.db.Where("email = ?", consts.SystemAuthorEmail).First(&author).Error)
	assert.Equal(t, author.ID, post.UserID)

	roles, err := repository.NewUserRolesRepo(f.db).GetUserRoles(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, consts.RoleColaborador, roles[0].Name)

	// marcador de execução persistido junto com o post
	cfg, err := f.configRepo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg.LastRunAt)
}

func TestRunScheduledDefaultsToNoticia(t *testing.T) {
	f := newGenerationFixture(t)
	cfg := enabledConfig()
	cfg.ActiveCategories = ""
	f.saveConfig(t, cfg)

	post, err := f.svc.RunScheduled(context.Background(), time.Now())
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, consts.CategoryNoticia, post.Category)
}

func TestRunScheduledSkipsWhenDisabled(t *testing.T) {
	f := newGenerationFixture(t)
	cfg := enabledConfig()
	cfg.Enabled = false
	f.saveConfig(t, cfg)

	post, err := f.svc.RunScheduled(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, post)
	assert.Zero(t, f.generator.calls)
}

func TestRunScheduledSkipsWhenNotDue(t *testing.T) {
	f := newGenerationFixture(t)
	cfg := enabledConfig()
	recent := time.Now().Add(-2 * time.Hour)
	cfg.LastRunAt = &recent
	f.saveConfig(t, cfg)

	post, err := f.svc.RunScheduled(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, post)
	assert.Zero(t, f.generator.calls)
}

func TestRunScheduledRunsWhenFrequencyElapsed(t *testing.T) {
	f := newGenerationFixture(t)
	cfg := enabledConfig()
	old := time.Now().Add(-25 * time.Hour)
	cfg.LastRunAt = &old
	f.saveConfig(t, cfg)

	post, err := f.svc.RunScheduled(context.Background(), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, post)
}

func TestRunScheduledRequiresTopicsAndInstructions(t *testing.T) {
	f := newGenerationFixture(t)
	cfg := enabledConfig()
	cfg.Topics = "   "
	f.saveConfig(t, cfg)

	_, err := f.svc.RunScheduled(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrGenerationConfig)
	assert.Zero(t, f.generator.calls)
}

func TestRunScheduledWithoutAnyApiKey(t *testing.T) {
	f := newGenerationFixture(t)
	cfg := enabledConfig()
	cfg.ApiKey = ""
	f.saveConfig(t, cfg)
	t.Setenv(consts.EnvLLMAPIKey, "")

	_, err := f.svc.RunScheduled(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrNoApiKey)
}

func TestRunScheduledFallsBackToEnvKey(t *testing.T) {
	f := newGenerationFixture(t)
	cfg := enabledConfig()
	cfg.ApiKey = ""
	f.saveConfig(t, cfg)
	t.Setenv(consts.EnvLLMAPIKey, "sk-env")

	post, err := f.svc.RunScheduled(context.Background(), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, post)
}

func TestGeneratorFailureLeavesNoTrace(t *testing.T) {
	f := newGenerationFixture(t)
	f.saveConfig(t, enabledConfig())
	f.generator.err = errors.New("timeout")

	_, err := f.svc.RunScheduled(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrLLMFailed)

	// nada publicado, marcador intacto
	var count int64
	require.NoError(t, f.db.Model(&model.Post{}).Count(&count).Error)
	assert.Zero(t, count)

	cfg, err := f.configRepo.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cfg.LastRunAt)
}

func TestSystemAuthorIsIdempotent(t *testing.T) {
	f := newGenerationFixture(t)
	f.saveConfig(t, enabledConfig())
	ctx := context.Background()

	manual := &dto.ManualGenerationDTO{
		Model:        "gpt-4o-mini",
		Temperature:  0.5,
		Topics:       []string{"checklist"},
		Instructions: "curto",
	}
	_, err := f.svc.RunManual(ctx, manual)
	require.NoError(t, err)
	_, err = f.svc.RunManual(ctx, manual)
	require.NoError(t, err)

	var count int64
	require.NoError(t, f.db.Model(&model.User{}).
		Where("email = ?", consts.SystemAuthorEmail).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var posts int64
	require.NoError(t, f.db.Model(&model.Post{}).Count(&posts).Error)
	assert.Equal(t, int64(2), posts)

	// papel de colaborador atribuído uma única vez
	var author model.User
	require.NoError(t, f.db.Where("email = ?", consts.SystemAuthorEmail).First(&author).Error)
	var links int64
	require.NoError(t, f.db.Model(&model.UserRole{}).
		Where("user_id = ?", author.ID).
		Count(&links).Error)
	assert.Equal(t, int64(1), links)
}

func TestRunManualUsesGivenParams(t *testing.T) {
	f := newGenerationFixture(t)
	f.saveConfig(t, enabledConfig())

	_, err := f.svc.RunManual(context.Background(), &dto.ManualGenerationDTO{
		Model:        "modelo-alternativo",
		Temperature:  1.2,
		Topics:       []string{"regulamentação", "ANAC"},
		Instructions: "cite fontes",
	})
	require.NoError(t, err)
	assert.Equal(t, "modelo-alternativo", f.generator.lastModel)
	assert.Contains(t, f.generator.lastPrompt, "regulamentação")
	assert.Contains(t, f.generator.lastPrompt, "cite fontes")
}

func TestRunManualRejectsTemperatureOutOfRange(t *testing.T) {
	f := newGenerationFixture(t)

	_, err := f.svc.RunManual(context.Background(), &dto.ManualGenerationDTO{
		Model:        "m",
		Temperature:  2.5,
		Topics:       []string{"x"},
		Instructions: "y",
	})
	assert.ErrorIs(t, err, ErrInvalidTemp)
}

func TestUpdateConfigValidation(t *testing.T) {
	f := newGenerationFixture(t)
	ctx := context.Background()

	badTemp := 3.0
	_, err := f.svc.UpdateConfig(ctx, &dto.GenerationConfigDTO{Temperature: &badTemp})
	assert.ErrorIs(t, err, ErrInvalidTemp)

	_, err = f.svc.UpdateConfig(ctx, &dto.GenerationConfigDTO{ActiveCategories: []string{"memes"}})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	badFreq := 0
	_, err = f.svc.UpdateConfig(ctx, &dto.GenerationConfigDTO{FrequencyDays: &badFreq})
	assert.ErrorIs(t, err, ErrGenerationConfig)

	badTime := "25h00"
	_, err = f.svc.UpdateConfig(ctx, &dto.GenerationConfigDTO{TimeOfDay: &badTime})
	assert.ErrorIs(t, err, ErrGenerationConfig)
}

func TestUpdateConfigNeverExposesKey(t *testing.T) {
	f := newGenerationFixture(t)
	ctx := context.Background()

	key := "sk-secreta"
	enabled := true
	view, err := f.svc.UpdateConfig(ctx, &dto.GenerationConfigDTO{ApiKey: &key, Enabled: &enabled})
	require.NoError(t, err)

	assert.True(t, view.HasApiKey)
	assert.True(t, view.Enabled)

	view, err = f.svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.True(t, view.HasApiKey)
}

func TestDueRespectsTimeOfDay(t *testing.T) {
	cfg := &model.GenerationConfig{FrequencyDays: 1, TimeOfDay: "18:00"}

	morning := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 5, 10, 19, 0, 0, 0, time.UTC)

	assert.False(t, due(cfg, morning))
	assert.True(t, due(cfg, evening))
}
