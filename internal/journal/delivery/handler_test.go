package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authdelivery "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/delivery"
	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"
	authrepo "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/repository"
	journaldomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/domain"
	journalrepo "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/repository"
	"github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/usecase"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubCalendar struct {
	inserts int
}

func (s *stubCalendar) InsertEvent(ctx context.Context, creds authdomain.Credentials, calendarID string, event *journaldomain.CalendarEvent) (string, error) {
	s.inserts++
	return fmt.Sprintf("evt-%d", s.inserts), nil
}

func (s *stubCalendar) PatchEvent(ctx context.Context, creds authdomain.Credentials, calendarID, eventID string, event *journaldomain.CalendarEvent) error {
	return nil
}

// setupRouter wires the handler behind a middleware that injects a fixed
// session user, mirroring what AuthRequired does after login.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&authdomain.User{}, &journaldomain.Entry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	userRepo := authrepo.NewUserRepository(gdb)
	entryRepo := journalrepo.NewGormEntryRepository(gdb)
	user := &authdomain.User{
		GoogleUserID: "google-journaler",
		Email:        "journaler@example.com",
		AccessToken:  "access",
		RefreshToken: "refresh",
		TimeZone:     "UTC",
	}
	if err := userRepo.Create(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	uc := usecase.NewJournalUsecase(entryRepo, userRepo, &stubCalendar{}, "http://localhost:3000")
	handler := NewJournalHandler(uc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", user.ID)
		c.Next()
	})
	r.GET("/today", handler.GetToday)
	r.GET("/entries", handler.ListEntries)
	r.GET("/entry/:date", handler.GetEntry)
	r.POST("/save-draft", handler.SaveDraft)
	r.POST("/submit", handler.Submit)
	r.POST("/submit-for-date", handler.SubmitForDate)
	r.POST("/upload/reference-image", handler.UploadReferenceImage)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	return out
}

func TestGetTodayCreatesDraft(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/today", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["status"] != "DRAFT" {
		t.Errorf("status = %v, want DRAFT", body["status"])
	}
	if body["date"] == "" {
		t.Error("expected a date")
	}
	if _, ok := body["imageUrl"]; !ok {
		t.Error("response must carry imageUrl, null included")
	}
}

func TestSubmitHappyPath(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/submit", DraftRequest{
		Accomplished:  "Shipped the reminder sweep",
		CouldDoBetter: "Less coffee",
		ProudHappy:    "Clean tests",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Error("expected success true")
	}
	if body["calendarEventId"] != "evt-1" {
		t.Errorf("calendarEventId = %v, want evt-1", body["calendarEventId"])
	}
}

func TestSubmitMissingFields(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/submit", DraftRequest{Accomplished: "only one answer"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubmitForDateFuture(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/submit-for-date", DraftRequest{
		Date:          "2099-01-01",
		Accomplished:  "a",
		CouldDoBetter: "b",
		ProudHappy:    "c",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetEntryNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/entry/2020-01-01", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSaveDraftThenList(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/save-draft", DraftRequest{Accomplished: "partial thoughts"})
	if w.Code != http.StatusOK {
		t.Fatalf("save-draft status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/entries", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("entries status = %d", w.Code)
	}
	body := decodeBody(t, w)
	entries, ok := body["entries"].([]interface{})
	if !ok || len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %v", body["entries"])
	}
}

func TestUploadReferenceImage(t *testing.T) {
	r := setupRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "mood.png")
	if err != nil {
		t.Fatalf("failed to build form: %v", err)
	}
	part.Write([]byte("not-a-real-png"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload/reference-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	url, _ := body["imageUrl"].(string)
	if !strings.HasPrefix(url, "data:") || !strings.Contains(url, ";base64,") {
		t.Errorf("imageUrl = %q, want a data URL", url)
	}
}

func TestUploadReferenceImageNoFile(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/upload/reference-image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAuthRequiredRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("journal_session", cookie.NewStore([]byte("test-secret"))))
	r.GET("/today", authdelivery.AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/today", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
