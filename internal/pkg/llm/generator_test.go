package llm

import (
	"PortalPiloto/internal/api/config"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// O gerador precisa funcionar sem a configuração global carregada
// (processos de teste e ferramentas não chamam LoadConfig).
func TestGenerateWithoutGlobalConfig(t *testing.T) {
	config.Cfg = nil

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator().Generate(ctx, "sk-teste", "gpt-4o-mini", 0.7, "sistema", "usuário")
	assert.Error(t, err)
}
