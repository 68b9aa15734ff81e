package api

import (
	authUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/usecase"
	imageUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/image/usecase"
	journalUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/usecase"
	reminderUsecase "github.com/EasyEatsBodega/do-your-daily-journal/internal/reminder/usecase"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	journalUsecase  journalUsecase.JournalUsecase
	reminderUsecase reminderUsecase.ReminderUsecase
	imageUsecase    imageUsecase.ImageUsecase
	config          *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, journalUc journalUsecase.JournalUsecase, reminderUc reminderUsecase.ReminderUsecase, imageUc imageUsecase.ImageUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:     authUc,
		journalUsecase:  journalUc,
		reminderUsecase: reminderUc,
		imageUsecase:    imageUc,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()

	// Cookie sessions; the OAuth callback writes the user id here.
	store := cookie.NewStore([]byte(h.config.SessionSecret))
	r.Use(sessions.Sessions("journal_session", store))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.journalUsecase, h.reminderUsecase, h.imageUsecase, h.config)

	return r.Run(addr)
}
