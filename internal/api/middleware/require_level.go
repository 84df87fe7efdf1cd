package middleware

import (
	"PortalPiloto/internal/pkg/response"
	"PortalPiloto/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// RequireLevel exige que o usuário tenha pelo menos o nível do papel
// informado. Um papel superior sempre satisfaz o nível inferior.
func RequireLevel(minRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := c.GetStringSlice("roles")

		if !security.HasLevel(roles, minRole) {
			response.Fail(c, response.Forbidden, "permissão insuficiente")
			c.Abort()
			return
		}

		c.Next()
	}
}
