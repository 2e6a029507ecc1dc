// FILE: internal/bootstrap/container.go
package bootstrap

import (
	"context"
	"log"

	"finance-advisor-be/internal/config"
	"finance-advisor-be/internal/controller"
	"finance-advisor-be/internal/handler"
	"finance-advisor-be/internal/pkg/logger"
	"finance-advisor-be/internal/pkg/mailer"
	"finance-advisor-be/internal/repository/memory"
	"finance-advisor-be/internal/service"
	"finance-advisor-be/internal/websocket"
	"finance-advisor-be/pkg/advice"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/shopspring/decimal"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	AdvisorController  controller.IAdvisorController
	BalanceController  controller.IBalanceController
	AssetController    controller.IAssetController
	SettingsController controller.ISettingsController

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Repositories (in-memory, reset on restart)
	featureRepo := memory.NewFeatureRepository(advice.Catalog())
	balanceRepo := memory.NewBalanceRepository()
	adviceRepo := memory.NewAdviceRepository()
	userRepo := memory.NewUserRepository()
	assetRepo := memory.NewAssetRepository()
	settingsRepo := memory.NewSettingsRepository()
	codeRepo := memory.NewCodeRepository()

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	startingBalance, err := decimal.NewFromString(cfg.Advisor.StartingBalance)
	if err != nil {
		log.Fatalf("[FATAL] Invalid STARTING_BALANCE %q: %v", cfg.Advisor.StartingBalance, err)
	}

	// 4. Services
	publisherService := service.NewPublisherService(pubSub)
	authService := service.NewAuthService(userRepo, codeRepo, balanceRepo, settingsRepo, emailService, startingBalance)
	balanceService := service.NewBalanceService(balanceRepo)
	advisorService := service.NewAdvisorService(
		featureRepo,
		balanceRepo,
		adviceRepo,
		advice.NewGenerator(advice.SystemRand{}),
		publisherService,
		sysLogger,
		cfg.Advisor.ProcessingDelay,
	)
	assetService := service.NewAssetService(assetRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Notification worker: advice completion events -> websocket
	notifService := service.NewNotificationService(pubSub, wsHub, settingsRepo)
	if err := notifService.Start(context.Background()); err != nil {
		log.Printf("[WARN] Failed to start notification worker: %v", err)
	}

	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		AdvisorController:  controller.NewAdvisorController(advisorService),
		BalanceController:  controller.NewBalanceController(balanceService),
		AssetController:    controller.NewAssetController(assetService),
		SettingsController: controller.NewSettingsController(settingsService),

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
