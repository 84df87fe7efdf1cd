package security

import "PortalPiloto/internal/pkg/consts"

// Níveis de capacidade, estritamente ordenados.
// Toda verificação de autorização passa por aqui; nenhum handler
// compara papéis por conta própria.
var roleLevels = map[string]int{
	consts.RoleUsuario:     1,
	consts.RoleColaborador: 2,
	consts.RoleAdmin:       3,
}

// Level retorna o nível de capacidade de um papel (0 se desconhecido)
func Level(role string) int {
	return roleLevels[role]
}

// MaxLevel retorna o maior nível entre os papéis do usuário
func MaxLevel(roles []string) int {
	max := 0
	for _, r := range roles {
		if l := roleLevels[r]; l > max {
			max = l
		}
	}
	return max
}

// HasLevel informa se o conjunto de papéis atinge o nível mínimo exigido
func HasLevel(roles []string, required string) bool {
	return MaxLevel(roles) >= roleLevels[required]
}
