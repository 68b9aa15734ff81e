package delivery

import (
	"errors"
	"net/http"

	"github.com/EasyEatsBodega/do-your-daily-journal/internal/image/usecase"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ImageHandler handles image generation requests
type ImageHandler struct {
	imageUsecase usecase.ImageUsecase
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageUsecase usecase.ImageUsecase) *ImageHandler {
	return &ImageHandler{
		imageUsecase: imageUsecase,
	}
}

// GenerateRequest names the entry to illustrate.
type GenerateRequest struct {
	Date string `json:"date" binding:"required"`
}

// Generate renders an illustration for one day's entry
// POST /image/generate
func (h *ImageHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL, err := h.imageUsecase.GenerateForDate(c.Request.Context(), c.GetString("userID"), req.Date)
	if err != nil {
		if errors.Is(err, usecase.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		// Provider failures are opaque to the caller.
		logger.Sugar.Errorw("image generation error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "imageUrl": imageURL})
}
