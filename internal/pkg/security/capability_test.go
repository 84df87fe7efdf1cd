package security

import (
	"PortalPiloto/internal/pkg/consts"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOrdering(t *testing.T) {
	assert.Less(t, Level(consts.RoleUsuario), Level(consts.RoleColaborador))
	assert.Less(t, Level(consts.RoleColaborador), Level(consts.RoleAdmin))
}

func TestLevelUnknownRole(t *testing.T) {
	assert.Equal(t, 0, Level("piloto-chefe"))
}

func TestMaxLevelTakesHighest(t *testing.T) {
	roles := []string{consts.RoleUsuario, consts.RoleAdmin}
	assert.Equal(t, Level(consts.RoleAdmin), MaxLevel(roles))
	assert.Equal(t, 0, MaxLevel(nil))
}

func TestHasLevel(t *testing.T) {
	admin := []string{consts.RoleAdmin}
	colaborador := []string{consts.RoleColaborador}
	usuario := []string{consts.RoleUsuario}

	// papel superior satisfaz qualquer nível inferior
	assert.True(t, HasLevel(admin, consts.RoleUsuario))
	assert.True(t, HasLevel(admin, consts.RoleColaborador))
	assert.True(t, HasLevel(admin, consts.RoleAdmin))

	assert.True(t, HasLevel(colaborador, consts.RoleColaborador))
	assert.False(t, HasLevel(colaborador, consts.RoleAdmin))

	assert.False(t, HasLevel(usuario, consts.RoleColaborador))
	assert.False(t, HasLevel(nil, consts.RoleUsuario))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, []string{consts.RoleColaborador})
	assert.NoError(t, err)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, []string{consts.RoleColaborador}, claims.Roles)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}
