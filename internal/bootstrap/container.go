package bootstrap

import (
	"voice-ecommerce-be/internal/config"
	"voice-ecommerce-be/internal/controller"
	"voice-ecommerce-be/internal/handler"
	"voice-ecommerce-be/internal/pkg/logger"
	"voice-ecommerce-be/internal/repository/memory"
	"voice-ecommerce-be/internal/service"
	"voice-ecommerce-be/internal/websocket"
)

type Container struct {
	// Controllers
	ProductController controller.IProductController

	// WebSockets
	VoiceHandler *handler.VoiceHandler
	Registry     *websocket.Registry

	// Shared infrastructure
	Logger logger.ILogger
	Config *config.Config
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Repositories
	catalogRepo := memory.NewCatalogRepository()
	sessionRepo := memory.NewSessionRepository()

	// Services
	catalogService := service.NewCatalogService(catalogRepo)

	// WebSockets
	registry := websocket.NewRegistry(sysLogger)
	voiceHandler := handler.NewVoiceHandler(catalogService, registry, sessionRepo, cfg, sysLogger)

	// Controllers
	productController := controller.NewProductController(catalogService)

	return &Container{
		ProductController: productController,
		VoiceHandler:      voiceHandler,
		Registry:          registry,
		Logger:            sysLogger,
		Config:            cfg,
	}
}
