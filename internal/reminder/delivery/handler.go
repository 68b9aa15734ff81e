package delivery

import (
	"net/http"
	"time"

	"github.com/EasyEatsBodega/do-your-daily-journal/internal/reminder/usecase"

	"github.com/gin-gonic/gin"
)

// CronHandler exposes the reminder sweep to the external cron trigger
type CronHandler struct {
	reminderUsecase usecase.ReminderUsecase
	cronSecret      string
}

// NewCronHandler creates a new CronHandler
func NewCronHandler(reminderUsecase usecase.ReminderUsecase, cronSecret string) *CronHandler {
	return &CronHandler{
		reminderUsecase: reminderUsecase,
		cronSecret:      cronSecret,
	}
}

// Remind runs one reminder sweep. Protected by a shared bearer secret
// when one is configured.
// GET /cron/remind
func (h *CronHandler) Remind(c *gin.Context) {
	if h.cronSecret != "" && c.GetHeader("Authorization") != "Bearer "+h.cronSecret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sent, err := h.reminderUsecase.RunSweep(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"remindersSent": len(sent),
		"users":         sent,
	})
}
