package api_test

import (
	"PortalPiloto/internal/api/config"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/pkg/database"
	"PortalPiloto/internal/wire"
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testApp struct {
	router http.Handler
	db     *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app, err := wire.BuildApplication(db, nil, &config.Config{})
	require.NoError(t, err)

	return &testApp{router: app.Router, db: db}
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *envelope {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return &env
}

func (a *testApp) register(t *testing.T, name, email string) {
	t.Helper()
	env := a.do(t, http.MethodPost, "/api/user/register", "", gin.H{
		"name": name, "email": email, "password": "segredo123",
	})
	require.Equal(t, 200, env.Code, env.Message)
}

func (a *testApp) login(t *testing.T, email string) string {
	t.Helper()
	env := a.do(t, http.MethodPost, "/api/user/login", "", gin.H{
		"email": email, "password": "segredo123",
	})
	require.Equal(t, 200, env.Code, env.Message)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

// grantRole troca o papel do usuário direto no banco; o token precisa ser
// reemitido depois, como num login novo
func (a *testApp) grantRole(t *testing.T, email, roleName string) {
	t.Helper()

	var user model.User
	require.NoError(t, a.db.Where("email = ?", email).First(&user).Error)
	var role model.Role
	require.NoError(t, a.db.Where("name = ?", roleName).First(&role).Error)

	require.NoError(t, a.db.Where("user_id = ?", user.ID).Delete(&model.UserRole{}).Error)
	require.NoError(t, a.db.Create(&model.UserRole{UserID: user.ID, RoleID: role.ID}).Error)
}

func TestTipModerationFlow(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "Lia", "lia@example.com")
	app.register(t, "Mod", "mod@example.com")
	app.grantRole(t, "mod@example.com", consts.RoleAdmin)

	liaToken := app.login(t, "lia@example.com")
	modToken := app.login(t, "mod@example.com")

	// usuária autenticada envia dica
	env := app.do(t, http.MethodPost, "/api/tips", liaToken, gin.H{
		"title":   "Calibre a bússola",
		"content": "<p>Longe de estruturas metálicas.</p>",
	})
	require.Equal(t, 200, env.Code, env.Message)

	var tip struct {
		ID     uint64 `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tip))
	assert.Equal(t, consts.TipStatusPending, tip.Status)

	// visitante não vê dica pendente na vitrine
	env = app.do(t, http.MethodGet, "/api/tips/aprovadas", "", nil)
	require.Equal(t, 200, env.Code)
	var page struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Zero(t, page.Total)

	// usuária comum não modera
	env = app.do(t, http.MethodPut, "/api/tips/1/status", liaToken, gin.H{"status": "aprovada"})
	assert.Equal(t, 403, env.Code)

	// admin aprova
	env = app.do(t, http.MethodPut, "/api/tips/1/status", modToken, gin.H{"status": "aprovada"})
	require.Equal(t, 200, env.Code, env.Message)

	// dica aprovada aparece na vitrine
	env = app.do(t, http.MethodGet, "/api/tips/aprovadas", "", nil)
	require.Equal(t, 200, env.Code)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)

	// segunda decisão é rejeitada
	env = app.do(t, http.MethodPut, "/api/tips/1/status", modToken, gin.H{"status": "rejeitada"})
	assert.Equal(t, 409, env.Code)

	// colaborador também modera
	app.register(t, "Cadu", "cadu@example.com")
	app.grantRole(t, "cadu@example.com", consts.RoleColaborador)
	caduToken := app.login(t, "cadu@example.com")

	env = app.do(t, http.MethodPost, "/api/tips", liaToken, gin.H{
		"title":   "Cheque o NOTAM",
		"content": "<p>Antes de cada operação.</p>",
	})
	require.Equal(t, 200, env.Code, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &tip))

	env = app.do(t, http.MethodPut, "/api/tips/2/status", caduToken, gin.H{"status": "rejeitada"})
	require.Equal(t, 200, env.Code, env.Message)
}

func TestPostPublishingRequiresColaborador(t *testing.T) {
	app := newTestApp(t)

	app.register(t, "Nilo", "nilo@example.com")
	token := app.login(t, "nilo@example.com")

	body := gin.H{
		"title":    "Post de teste",
		"content":  "<p>conteúdo</p>",
		"category": consts.CategoryNoticia,
	}

	// usuário comum não publica
	env := app.do(t, http.MethodPost, "/api/posts", token, body)
	assert.Equal(t, 403, env.Code)

	// promovido a colaborador, publica
	app.grantRole(t, "nilo@example.com", consts.RoleColaborador)
	token = app.login(t, "nilo@example.com")

	env = app.do(t, http.MethodPost, "/api/posts", token, body)
	require.Equal(t, 200, env.Code, env.Message)

	// listagem pública mostra o post
	env = app.do(t, http.MethodGet, "/api/posts?page=1&page_size=10", "", nil)
	require.Equal(t, 200, env.Code)
	var page struct {
		Total int64 `json:"total"`
		Items []struct {
			Title      string `json:"title"`
			AuthorName string `json:"author_name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Nilo", page.Items[0].AuthorName)
}

func TestAnonymousAccessRules(t *testing.T) {
	app := newTestApp(t)

	// rotas protegidas exigem token
	env := app.do(t, http.MethodGet, "/api/user/info", "", nil)
	assert.Equal(t, 401, env.Code)

	env = app.do(t, http.MethodPost, "/api/tips", "", gin.H{"title": "x", "content": "<p>y</p>"})
	assert.Equal(t, 401, env.Code)

	// rotas públicas respondem sem token
	env = app.do(t, http.MethodGet, "/api/sponsors", "", nil)
	assert.Equal(t, 200, env.Code)

	env = app.do(t, http.MethodGet, "/api/donation", "", nil)
	assert.Equal(t, 200, env.Code)
}

func TestCronTriggerRequiresSecret(t *testing.T) {
	app := newTestApp(t)

	// sem segredo configurado o gatilho externo fica desligado
	env := app.do(t, http.MethodPost, "/api/generation/tick", "", nil)
	assert.Equal(t, 403, env.Code)
}
