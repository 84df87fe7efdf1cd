package llm

import (
	"PortalPiloto/internal/api/config"
	log "log/slog"
	"os"
	"strings"
)

// directivePrompt instrução fixa anexada a toda geração de conteúdo
var directivePrompt string

const defaultDirective = "Você é o redator do Portal do Piloto, um portal de conteúdo " +
	"para pilotos de drone. Escreva um artigo completo em HTML bem estruturado, " +
	"começando com um título em <h1> e usando <h2>, <p> e <ul> quando fizer sentido. " +
	"Responda somente com o HTML do artigo."

func InitLLM() error {
	cfg := config.Cfg.LLM

	directivePrompt = readPrompt(cfg.PromptPath)
	if directivePrompt == "" {
		directivePrompt = defaultDirective
	}

	return nil
}

// Directive retorna a instrução fixa de geração
func Directive() string {
	return directivePrompt
}

func readPrompt(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Falha ao ler arquivo de prompt, usando diretiva padrão", "path", path, "err", err)
		return ""
	}
	return strings.TrimSpace(string(data))
}
