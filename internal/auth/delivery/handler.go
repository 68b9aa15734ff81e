package delivery

import (
	"errors"
	"net/http"

	"github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/usecase"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles the Google sign-in flow and session lifecycle
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	appBaseURL  string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, appBaseURL string) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		appBaseURL:  appBaseURL,
	}
}

// GoogleStart redirects to the Google consent screen
// GET /auth/google/start
func (h *AuthHandler) GoogleStart(c *gin.Context) {
	c.Redirect(http.StatusFound, h.authUsecase.AuthURL())
}

// GoogleCallback finishes the OAuth flow: exchanges the code, upserts
// the account and opens a session. Every failure lands back on the
// login page with a reason code.
// GET /auth/google/callback?code=
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		h.loginRedirect(c, "no_code")
		return
	}

	user, err := h.authUsecase.HandleCallback(c.Request.Context(), code)
	if err != nil {
		logger.Sugar.Errorw("oauth callback error", "error", err)
		switch {
		case errors.Is(err, usecase.ErrNoAccessToken):
			h.loginRedirect(c, "no_access_token")
		case errors.Is(err, usecase.ErrNoUserInfo):
			h.loginRedirect(c, "no_user_info")
		default:
			h.loginRedirect(c, "callback_failed")
		}
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		logger.Sugar.Errorw("failed to save session", "error", err)
		h.loginRedirect(c, "callback_failed")
		return
	}

	c.Redirect(http.StatusFound, h.appBaseURL+"/today")
}

// Logout clears the session
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the signed-in account
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUsecase.GetUser(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) loginRedirect(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, h.appBaseURL+"/login?error="+reason)
}
