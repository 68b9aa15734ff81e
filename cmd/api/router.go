package api

import (
	"net/http"

	authDelivery "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/delivery"
	authUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/usecase"
	imageDelivery "github.com/EasyEatsBodega/do-your-daily-journal/internal/image/delivery"
	imageUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/image/usecase"
	journalDelivery "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/delivery"
	journalUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/usecase"
	reminderDelivery "github.com/EasyEatsBodega/do-your-daily-journal/internal/reminder/delivery"
	reminderUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/reminder/usecase"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, journalUc journalUsecase.JournalUsecase, reminderUc reminderUsecase.ReminderUsecase, imageUc imageUsecase.ImageUsecase, cfg *config.Config) {
	authHandler := authDelivery.NewAuthHandler(authUc, cfg.AppBaseURL)
	journalHandler := journalDelivery.NewJournalHandler(journalUc)
	cronHandler := reminderDelivery.NewCronHandler(reminderUc, cfg.CronSecret)
	imageHandler := imageDelivery.NewImageHandler(imageUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.GET("/google/start", authHandler.GoogleStart)
		auth.GET("/google/callback", authHandler.GoogleCallback)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authDelivery.AuthRequired(), authHandler.Me)
	}

	// Journal routes (session required)
	journal := r.Group("/")
	journal.Use(authDelivery.AuthRequired())
	{
		journal.GET("/today", journalHandler.GetToday)
		journal.GET("/entries", journalHandler.ListEntries)
		journal.GET("/entry/:date", journalHandler.GetEntry)
		journal.POST("/save-draft", journalHandler.SaveDraft)
		journal.POST("/save-draft-for-date", journalHandler.SaveDraftForDate)
		journal.POST("/submit", journalHandler.Submit)
		journal.POST("/submit-for-date", journalHandler.SubmitForDate)
		journal.POST("/upload/reference-image", journalHandler.UploadReferenceImage)
		journal.POST("/image/generate", imageHandler.Generate)
	}

	// Cron trigger (shared-secret protected, no session)
	r.GET("/cron/remind", cronHandler.Remind)
}
