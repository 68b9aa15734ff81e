package main

import (
	"log"

	api "github.com/EasyEatsBodega/do-your-daily-journal/cmd/api"
	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"
	authRepo "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/repository"
	authUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/usecase"
	imageUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/image/usecase"
	journaldomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/domain"
	journalRepo "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/repository"
	journalUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/usecase"
	reminderUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/reminder/usecase"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/config"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/database"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/google"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/logger"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/openai"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.LogPath); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Logger.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &journaldomain.Entry{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	entryRepo := journalRepo.NewGormEntryRepository(db)

	// External collaborators
	googleService := google.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)
	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepo, googleService)
	journalUc := journalUsecase.NewJournalUsecase(entryRepo, userRepo, googleService, cfg.AppBaseURL)
	reminderUc := reminderUsecase.NewReminderUsecase(userRepo, entryRepo, googleService, cfg.AppBaseURL)
	imageUc := imageUsecase.NewImageUsecase(entryRepo, openaiClient)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, journalUc, reminderUc, imageUc, cfg)

	logger.Sugar.Infow("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
