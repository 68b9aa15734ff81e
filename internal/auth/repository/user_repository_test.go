package repository

import (
	"fmt"
	"testing"

	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) UserRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&authdomain.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewUserRepository(gdb)
}

func createUser(t *testing.T, repo UserRepository, email, refreshToken string) *authdomain.User {
	t.Helper()
	user := &authdomain.User{
		GoogleUserID: "google-" + email,
		Email:        email,
		AccessToken:  "access",
		RefreshToken: refreshToken,
		TimeZone:     "UTC",
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestCreateAssignsDefaults(t *testing.T) {
	repo := setupRepoTest(t)
	user := createUser(t, repo, "fresh@example.com", "refresh")

	if user.ID == "" {
		t.Error("expected generated uuid")
	}
	if user.CalendarID != "primary" {
		t.Errorf("calendar id = %q, want primary", user.CalendarID)
	}
}

func TestFindByGoogleIDNotFound(t *testing.T) {
	repo := setupRepoTest(t)

	user, err := repo.FindByGoogleID("nope")
	if err != nil {
		t.Fatalf("FindByGoogleID returned error: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil for unknown google id, got %+v", user)
	}
}

func TestUpdateTokensPreservesRefreshToken(t *testing.T) {
	repo := setupRepoTest(t)
	user := createUser(t, repo, "rotate@example.com", "refresh-original")

	// Refresh responses usually omit the refresh token.
	if err := repo.UpdateTokens(user.ID, "access-new", "", 1234); err != nil {
		t.Fatalf("UpdateTokens returned error: %v", err)
	}

	stored, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.AccessToken != "access-new" {
		t.Errorf("access token = %q, want access-new", stored.AccessToken)
	}
	if stored.TokenExpiryMs != 1234 {
		t.Errorf("expiry = %d, want 1234", stored.TokenExpiryMs)
	}
	if stored.RefreshToken != "refresh-original" {
		t.Errorf("refresh token was wiped: %q", stored.RefreshToken)
	}

	// An explicit new refresh token replaces the stored one.
	if err := repo.UpdateTokens(user.ID, "access-new", "refresh-rotated", 5678); err != nil {
		t.Fatalf("UpdateTokens returned error: %v", err)
	}
	stored, _ = repo.FindByID(user.ID)
	if stored.RefreshToken != "refresh-rotated" {
		t.Errorf("refresh token = %q, want refresh-rotated", stored.RefreshToken)
	}
}

func TestFindAllWithRefreshToken(t *testing.T) {
	repo := setupRepoTest(t)
	createUser(t, repo, "has-token@example.com", "refresh")
	createUser(t, repo, "no-token@example.com", "")

	users, err := repo.FindAllWithRefreshToken()
	if err != nil {
		t.Fatalf("FindAllWithRefreshToken returned error: %v", err)
	}
	if len(users) != 1 || users[0].Email != "has-token@example.com" {
		t.Errorf("unexpected result: %v", users)
	}
}

func TestSetLastReminderSent(t *testing.T) {
	repo := setupRepoTest(t)
	user := createUser(t, repo, "reminded@example.com", "refresh")

	if user.LastReminderSentYMD != nil {
		t.Fatal("new user must have no reminder marker")
	}
	if err := repo.SetLastReminderSent(user.ID, "2026-01-05"); err != nil {
		t.Fatalf("SetLastReminderSent returned error: %v", err)
	}

	stored, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.LastReminderSentYMD == nil || *stored.LastReminderSentYMD != "2026-01-05" {
		t.Errorf("marker = %v, want 2026-01-05", stored.LastReminderSentYMD)
	}
}
