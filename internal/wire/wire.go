package wire

import (
	"PortalPiloto/internal/api"
	"PortalPiloto/internal/api/config"
	"PortalPiloto/internal/api/handler"
	"PortalPiloto/internal/job"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/pkg/cron"
	"PortalPiloto/internal/pkg/kafka"
	"PortalPiloto/internal/pkg/llm"
	"PortalPiloto/internal/pkg/mailer"
	pkgmongo "PortalPiloto/internal/pkg/mongo"
	"PortalPiloto/internal/repository"
	"PortalPiloto/internal/service"
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer reúne os componentes de topo da aplicação
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
	Producer     kafka.Producer
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepository(db)
	userRolesRepo := repository.NewUserRolesRepo(db)
	postRepo := repository.NewPostRepository(db)
	tipRepo := repository.NewTipRepository(db)
	generationConfigRepo := repository.NewGenerationConfigRepo(db)
	sponsorRepo := repository.NewSponsorRepository(db)
	donationRepo := repository.NewDonationRepository(db)

	// papéis fixos do portal precisam existir antes do primeiro login
	err := roleRepo.EnsureRoles(context.Background(), []string{
		consts.RoleUsuario, consts.RoleColaborador, consts.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	var modLogRepo pkgmongo.ModerationLogRepo
	if mongoDB != nil {
		modLogRepo = pkgmongo.NewModerationLogRepo(mongoDB)
	}

	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}

	userService := service.NewUserService(userRepo, roleRepo, userRolesRepo)
	userRolesService := service.NewUserRolesService(userRepo, roleRepo, userRolesRepo)
	tipService := service.NewTipService(tipRepo, modLogRepo)
	postService := service.NewPostService(postRepo, userRepo, producer)
	generationService := service.NewGenerationService(generationConfigRepo, userRepo, roleRepo, userRolesRepo, llm.NewGenerator(), producer)
	sponsorService := service.NewSponsorService(sponsorRepo)
	donationService := service.NewDonationService(donationRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService, userRolesService),
		PostHandler:       handler.NewPostHandler(postService),
		TipHandler:        handler.NewTipHandler(tipService),
		GenerationHandler: handler.NewGenerationHandler(generationService),
		SponsorHandler:    handler.NewSponsorHandler(sponsorService),
		DonationHandler:   handler.NewDonationHandler(donationService),
		MediaHandler:      handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	generationJob := job.NewGenerationJob(generationService)
	cronMgr := cron.NewCronManager(generationJob)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, userRepo, mailer.NewClient())
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
		Producer:     producer,
	}, nil
}
