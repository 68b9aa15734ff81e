package repository

import authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *authdomain.User) error

	FindByID(id string) (*authdomain.User, error)

	FindByGoogleID(googleUserID string) (*authdomain.User, error)

	// FindAllWithRefreshToken returns every user that has completed the
	// offline-access OAuth flow; these are the reminder sweep candidates.
	FindAllWithRefreshToken() ([]*authdomain.User, error)

	Update(user *authdomain.User) error

	// UpdateTokens stores a refreshed access token and expiry. The
	// refresh token is only replaced when the new value is non-empty;
	// a refresh cycle that yields none keeps the stored one.
	UpdateTokens(userID, accessToken, refreshToken string, expiryMs int64) error

	// SetLastReminderSent records the per-day reminder dedup marker.
	SetLastReminderSent(userID, ymd string) error
}
