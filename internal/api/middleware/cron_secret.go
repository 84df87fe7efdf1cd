package middleware

import (
	"PortalPiloto/internal/api/config"
	"PortalPiloto/internal/pkg/response"
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// CronSecretMiddleware protege os gatilhos externos de agendamento
func CronSecretMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := ""
		if config.Cfg != nil {
			secret = config.Cfg.Cron.Secret
		}
		if secret == "" {
			response.Fail(c, response.Forbidden, "gatilho externo desabilitado")
			c.Abort()
			return
		}

		provided := c.GetHeader("X-Cron-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			response.Fail(c, response.Forbidden, "segredo inválido")
			c.Abort()
			return
		}

		c.Next()
	}
}
