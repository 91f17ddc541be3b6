package bootstrap

import (
	"fmt"
	"time"

	"saas-notes-be/internal/config"
	"saas-notes-be/internal/controller"
	"saas-notes-be/internal/pkg/logger"
	"saas-notes-be/internal/pkg/serverutils"
	"saas-notes-be/internal/repository/contract"
	"saas-notes-be/internal/repository/memory"
	"saas-notes-be/internal/service"
	"saas-notes-be/pkg/latency"
	"saas-notes-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
)

const sessionCleanupInterval = 10 * time.Minute

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	NoteController controller.INoteController
	PlanController controller.PlanController

	JwtMiddleware fiber.Handler

	// Background Services (Exposed for main.go to run)
	ActivityService service.IActivityService

	Logger   logger.ILogger
	Sessions contract.SessionRepository
	Accounts *store.AccountBook

	pubSub *gochannel.GoChannel
}

func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	activityLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)

	accounts, err := store.NewAccountBook(cfg.Accounts, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("load demo accounts: %w", err)
	}
	policy := store.Policy{
		ProTenant:   cfg.Demo.ProTenant,
		ProRole:     cfg.Demo.ProRole,
		FreeLimit:   cfg.Demo.FreeLimit,
		WelcomeNote: cfg.Demo.WelcomeNote,
	}

	sessions := memory.NewSessionRepository(cfg.Auth.TokenTTL, sessionCleanupInterval)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	activityService := service.NewActivityService(pubSub, cfg.Events.Topic, activityLogger)

	// 3. Services
	authService := service.NewAuthService(
		accounts,
		policy,
		sessions,
		publisherService,
		latency.Fixed(cfg.Demo.LoginLatency),
		sysLogger,
		cfg.Auth,
	)
	noteService := service.NewNoteService(sessions, publisherService, sysLogger)
	planService := service.NewPlanService(sessions)

	// 4. Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		NoteController:  controller.NewNoteController(noteService),
		PlanController:  controller.NewPlanController(planService),
		JwtMiddleware:   serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret),
		ActivityService: activityService,
		Logger:          sysLogger,
		Sessions:        sessions,
		Accounts:        accounts,
		pubSub:          pubSub,
	}, nil
}

// Close stops the event bus and flushes the system logger.
func (c *Container) Close() error {
	err := c.pubSub.Close()
	_ = c.Logger.Sync()
	return err
}
