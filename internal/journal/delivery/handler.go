package delivery

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/domain"
	"github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/usecase"

	"github.com/gin-gonic/gin"
)

// JournalHandler handles journal entry HTTP requests
type JournalHandler struct {
	journalUsecase usecase.JournalUsecase
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalUsecase usecase.JournalUsecase) *JournalHandler {
	return &JournalHandler{
		journalUsecase: journalUsecase,
	}
}

// DraftRequest is the body shared by the draft and submit endpoints.
// The dated variants additionally require Date.
type DraftRequest struct {
	Date          string `json:"date"`
	Accomplished  string `json:"accomplished"`
	CouldDoBetter string `json:"couldDoBetter"`
	ProudHappy    string `json:"proudHappy"`
}

func (r *DraftRequest) fields() domain.Fields {
	return domain.Fields{
		Accomplished:  r.Accomplished,
		CouldDoBetter: r.CouldDoBetter,
		ProudHappy:    r.ProudHappy,
	}
}

// GetToday returns today's entry, creating an empty draft when the user
// has none yet
// GET /today
func (h *JournalHandler) GetToday(c *gin.Context) {
	entry, err := h.journalUsecase.GetOrCreateToday(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":              entry.Date,
		"status":            entry.Status,
		"accomplished":      entry.Accomplished,
		"couldDoBetter":     entry.CouldDoBetter,
		"proudHappy":        entry.ProudHappy,
		"imageUrl":          entry.ImageURL,
		"referenceImageUrl": entry.ReferenceImageURL,
	})
}

// ListEntries returns all entries, newest date first
// GET /entries
func (h *JournalHandler) ListEntries(c *gin.Context) {
	entries, err := h.journalUsecase.ListAll(c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		out = append(out, gin.H{
			"date":          entry.Date,
			"status":        entry.Status,
			"accomplished":  entry.Accomplished,
			"couldDoBetter": entry.CouldDoBetter,
			"proudHappy":    entry.ProudHappy,
		})
	}
	c.JSON(http.StatusOK, gin.H{"entries": out})
}

// GetEntry returns a single entry by date
// GET /entry/:date
func (h *JournalHandler) GetEntry(c *gin.Context) {
	entry, err := h.journalUsecase.GetByDate(c.GetString("userID"), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":          entry.Date,
		"status":        entry.Status,
		"accomplished":  entry.Accomplished,
		"couldDoBetter": entry.CouldDoBetter,
		"proudHappy":    entry.ProudHappy,
		"imageUrl":      entry.ImageURL,
	})
}

// SaveDraft upserts today's draft fields
// POST /save-draft
func (h *JournalHandler) SaveDraft(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.journalUsecase.SaveDraft(c.Request.Context(), c.GetString("userID"), req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// SaveDraftForDate upserts draft fields for an explicit date
// POST /save-draft-for-date
func (h *JournalHandler) SaveDraftForDate(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.journalUsecase.SaveDraftForDate(c.Request.Context(), c.GetString("userID"), req.Date, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// Submit finalizes today's entry and mirrors it to the calendar
// POST /submit
func (h *JournalHandler) Submit(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.journalUsecase.Submit(c.Request.Context(), c.GetString("userID"), req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSubmit(c, result)
}

// SubmitForDate finalizes the entry for an explicit date
// POST /submit-for-date
func (h *JournalHandler) SubmitForDate(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.journalUsecase.SubmitForDate(c.Request.Context(), c.GetString("userID"), req.Date, req.fields())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSubmit(c, result)
}

// UploadReferenceImage stores an uploaded image as a data URL on
// today's entry
// POST /upload/reference-image
func (h *JournalHandler) UploadReferenceImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(raw))

	if _, err := h.journalUsecase.SetReferenceImage(c.Request.Context(), c.GetString("userID"), dataURL); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "imageUrl": dataURL})
}

func respondSubmit(c *gin.Context, result *usecase.SubmitResult) {
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"date":            result.Entry.Date,
		"entry":           result.Entry,
		"calendarEventId": result.CalendarEventID,
	})
}

// respondError maps usecase errors onto the HTTP taxonomy: validation
// failures are 400, missing rows 404, everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrFieldsRequired),
		errors.Is(err, usecase.ErrDateRequired),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrFutureDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, usecase.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
