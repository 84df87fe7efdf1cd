package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
	ServiceUnavailable  = 503
)

var (
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrEmailTaken        = errors.New("e-mail já cadastrado")
	ErrWrongCredential   = errors.New("e-mail ou senha incorretos")
	ErrPermissionDenied  = errors.New("permissão insuficiente")
	ErrRoleNotFound      = errors.New("papel inexistente")
	ErrAutoRebaixamento  = errors.New("não é permitido alterar o próprio papel")
	ErrPostNotFound      = errors.New("publicação não encontrada")
	ErrTipNotFound       = errors.New("dica não encontrada")
	ErrTipAlreadyDecided = errors.New("dica já moderada")
	ErrInvalidStatus     = errors.New("status de moderação inválido")
	ErrInvalidCategory   = errors.New("categoria inválida")
	ErrBodyTooLarge      = errors.New("conteúdo excede o tamanho máximo")
	ErrEmptyContent      = errors.New("conteúdo vazio")
	ErrSponsorNotFound   = errors.New("patrocinador não encontrado")
	ErrGenerationConfig  = errors.New("configuração de geração incompleta")
	ErrInvalidTemp       = errors.New("temperature fora do intervalo permitido")
	ErrNoApiKey          = errors.New("nenhuma credencial de LLM disponível")
	ErrGenerationBusy    = errors.New("já existe uma geração em andamento")
	ErrLLMFailed         = errors.New("falha ao gerar conteúdo")
	ErrInvalidMedia      = errors.New("tipo de arquivo não suportado")
)

// ErrorMap erro de negócio -> código do envelope
var ErrorMap = map[error]int{
	ErrUserNotFound:      NotFound,
	ErrEmailTaken:        Conflict,
	ErrWrongCredential:   Unauthorized,
	ErrPermissionDenied:  Forbidden,
	ErrRoleNotFound:      NotFound,
	ErrAutoRebaixamento:  Forbidden,
	ErrPostNotFound:      NotFound,
	ErrTipNotFound:       NotFound,
	ErrTipAlreadyDecided: Conflict,
	ErrInvalidStatus:     BadRequest,
	ErrInvalidCategory:   BadRequest,
	ErrBodyTooLarge:      BadRequest,
	ErrEmptyContent:      BadRequest,
	ErrSponsorNotFound:   NotFound,
	ErrGenerationConfig:  BadRequest,
	ErrInvalidTemp:       BadRequest,
	ErrNoApiKey:          ServiceUnavailable,
	ErrGenerationBusy:    Conflict,
	ErrLLMFailed:         ServiceUnavailable,
	ErrInvalidMedia:      BadRequest,
}
