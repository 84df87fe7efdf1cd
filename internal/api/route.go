package api

import (
	"PortalPiloto/internal/api/middleware"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// acessível sem login
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.Me)
				authGroup.PUT("/info", group.UserHandler.UpdateMe)
			}

			// exige login & nível admin
			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.RequireLevel(consts.RoleAdmin))
			{
				adminGroup.GET("/roles", group.UserHandler.GetRoles)
				adminGroup.GET("/:id/roles", group.UserHandler.GetUserRoles)
				adminGroup.PUT("/role", group.UserHandler.SetUserRole)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.List)
			postGroup.GET("/:id", group.PostHandler.Get)

			// publicar conteúdo exige nível colaborador
			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(), middleware.RequireLevel(consts.RoleColaborador))
			{
				authGroup.POST("", group.PostHandler.Create)
				authGroup.PUT("/:id", group.PostHandler.Update)
				authGroup.DELETE("/:id", group.PostHandler.Delete)
			}

			adminGroup := postGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireLevel(consts.RoleAdmin))
			{
				adminGroup.POST("/backfill-authors", group.PostHandler.BackfillAuthorNames)
			}
		}

		tipGroup := apiGroup.Group("/tips")
		{
			tipGroup.GET("/aprovadas", group.TipHandler.ListApproved)

			authOptGroup := tipGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:id", group.TipHandler.Get)
			}

			authGroup := tipGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.TipHandler.Submit)
				authGroup.DELETE("/:id", group.TipHandler.Delete)
			}

			modGroup := tipGroup.Group("")
			modGroup.Use(middleware.AuthMiddleware(), middleware.RequireLevel(consts.RoleColaborador))
			{
				modGroup.GET("", group.TipHandler.ListModeration)
				modGroup.PUT("/:id/status", group.TipHandler.SetStatus)
				modGroup.GET("/:id/historico", group.TipHandler.History)
			}
		}

		generationGroup := apiGroup.Group("/generation")
		{
			adminGroup := generationGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireLevel(consts.RoleAdmin))
			{
				adminGroup.GET("/config", group.GenerationHandler.GetConfig)
				adminGroup.PUT("/config", group.GenerationHandler.UpdateConfig)
				adminGroup.POST("/run", group.GenerationHandler.RunManual)
			}

			// gatilho de agendador externo, autenticado por segredo
			cronGroup := generationGroup.Group("")
			cronGroup.Use(middleware.CronSecretMiddleware())
			{
				cronGroup.POST("/tick", group.GenerationHandler.RunScheduled)
			}
		}

		sponsorGroup := apiGroup.Group("/sponsors")
		{
			sponsorGroup.GET("", group.SponsorHandler.ListActive)

			adminGroup := sponsorGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireLevel(consts.RoleAdmin))
			{
				adminGroup.GET("/all", group.SponsorHandler.ListAll)
				adminGroup.POST("", group.SponsorHandler.Create)
				adminGroup.PUT("/:id", group.SponsorHandler.Update)
				adminGroup.DELETE("/:id", group.SponsorHandler.Delete)
			}
		}

		donationGroup := apiGroup.Group("/donation")
		{
			donationGroup.GET("", group.DonationHandler.Get)

			adminGroup := donationGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireLevel(consts.RoleAdmin))
			{
				adminGroup.PUT("", group.DonationHandler.Update)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware(), middleware.RequireLevel(consts.RoleColaborador))
			{
				mediaGroup.POST("/upload", group.MediaHandler.Upload)
			}
		}
	}

	return r
}
