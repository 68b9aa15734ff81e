package usecase

import (
	"context"
	"errors"

	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
)

var (
	// ErrNoAccessToken is returned when the code exchange yields no access token.
	ErrNoAccessToken = errors.New("no access token")
	// ErrNoUserInfo is returned when Google reports no usable identity.
	ErrNoUserInfo = errors.New("no user info")
)

// AuthUsecase drives the Google OAuth flow and account upserts.
type AuthUsecase interface {
	// AuthURL is the consent-screen redirect target.
	AuthURL() string

	// HandleCallback exchanges the authorization code, looks up the
	// Google identity and calendar timezone, and upserts the account.
	HandleCallback(ctx context.Context, code string) (*authdomain.User, error)

	GetUser(userID string) (*authdomain.User, error)
}

// GoogleAuthService is the OAuth side of the Google collaborator.
// Implemented by pkg/google; faked in tests.
type GoogleAuthService interface {
	AuthCodeURL() string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	UserInfo(ctx context.Context, token *oauth2.Token) (*oauth2api.Userinfo, error)
	PrimaryCalendarTimeZone(ctx context.Context, token *oauth2.Token) (string, error)
}
