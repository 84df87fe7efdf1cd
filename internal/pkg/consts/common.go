package consts

// Categorias fixas de conteúdo do portal
const (
	CategoryDica       = "dica"
	CategoryFirmware   = "firmware"
	CategoryLegislacao = "legislacao"
	CategoryNoticia    = "noticia"
)

// SetCategories conjunto das categorias válidas
var SetCategories = map[string]bool{
	CategoryDica:       true,
	CategoryFirmware:   true,
	CategoryLegislacao: true,
	CategoryNoticia:    true,
}

// Status de moderação de dicas
const (
	TipStatusPending  = "pendente"
	TipStatusApproved = "aprovada"
	TipStatusRejected = "rejeitada"
)

// Papéis ordenados por capacidade
const (
	RoleUsuario     = "usuario"
	RoleColaborador = "colaborador"
	RoleAdmin       = "admin"
)

// SystemAuthorEmail identidade reservada do autor automático
const SystemAuthorEmail = "piloto.automatico@portaldopiloto.com.br"

// SystemAuthorName nome de exibição do autor automático
const SystemAuthorName = "Piloto Automático"

// MaxPostBodyBytes limite do corpo HTML de um post
const MaxPostBodyBytes = 64 * 1024

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

// EnvLLMAPIKey credencial de processo usada quando a configuração não tem chave
const EnvLLMAPIKey = "LLM_API_KEY"
