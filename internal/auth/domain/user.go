package domain

import (
	"time"

	"golang.org/x/oauth2"
)

// User is a journal account backed by a Google identity. OAuth tokens
// are never serialized to JSON.
type User struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	GoogleUserID        string    `json:"google_user_id" gorm:"uniqueIndex;not null"`
	Email               string    `json:"email" gorm:"not null"`
	AccessToken         string    `json:"-"`
	RefreshToken        string    `json:"-"`
	TokenExpiryMs       int64     `json:"-"` // epoch millis, 0 when unknown
	TimeZone            string    `json:"time_zone"`
	CalendarID          string    `json:"calendar_id" gorm:"default:primary"`
	LastReminderSentYMD *string   `json:"-" gorm:"column:last_reminder_sent_ymd"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TokenUpdateFunc persists tokens handed back by an OAuth refresh so a
// new access token survives the request that triggered it.
type TokenUpdateFunc func(token *oauth2.Token) error

// Credentials bundles the stored OAuth state a Google API call needs,
// plus the callback that persists refreshed tokens.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	ExpiryMs     int64
	OnRefresh    TokenUpdateFunc
}
