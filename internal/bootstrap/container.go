package bootstrap

import (
	"consulta-ai-be/internal/config"
	"consulta-ai-be/internal/controller"
	"consulta-ai-be/internal/pkg/logger"
	"consulta-ai-be/internal/pkg/serverutils"
	"consulta-ai-be/internal/pkg/token"
	"consulta-ai-be/internal/repository/unitofwork"
	"consulta-ai-be/internal/service"
	"consulta-ai-be/pkg/llm/openai"
	"consulta-ai-be/pkg/uploader"

	"gorm.io/gorm"
)

type Container struct {
	AuthController controller.IAuthController
	UserController controller.IUserController
	ChatController controller.IChatController

	AuthGate *serverutils.AuthGate
	Logger   logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokenManager := token.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)
	authGate := serverutils.NewAuthGate(tokenManager, uowFactory)

	// Outbound clients
	llmProvider := openai.NewOpenAIProvider(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.BaseURL,
	)
	imageUploader := uploader.NewCloudinaryUploader(
		cfg.Cloudinary.BaseURL,
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.UploadFolder,
	)

	// Services
	authService := service.NewAuthService(uowFactory, tokenManager, sysLogger)
	userService := service.NewUserService(uowFactory, imageUploader, sysLogger)
	chatService := service.NewChatService(uowFactory, llmProvider, sysLogger)

	return &Container{
		AuthController: controller.NewAuthController(authService),
		UserController: controller.NewUserController(userService),
		ChatController: controller.NewChatController(chatService),

		AuthGate: authGate,
		Logger:   sysLogger,
	}
}
