package usecase

import (
	"context"
	"fmt"

	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"
	"github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/repository"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/logger"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo  repository.UserRepository
	googleSvc GoogleAuthService
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, googleSvc GoogleAuthService) AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		googleSvc: googleSvc,
	}
}

func (u *authUsecase) AuthURL() string {
	return u.googleSvc.AuthCodeURL()
}

func (u *authUsecase) HandleCallback(ctx context.Context, code string) (*authdomain.User, error) {
	token, err := u.googleSvc.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}
	if token.AccessToken == "" {
		return nil, ErrNoAccessToken
	}

	info, err := u.googleSvc.UserInfo(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("userinfo lookup failed: %w", err)
	}
	if info == nil || info.Id == "" || info.Email == "" {
		return nil, ErrNoUserInfo
	}

	// The primary calendar's timezone is the best signal for where the
	// user's day starts. Missing or unreadable falls back to UTC.
	timeZone, err := u.googleSvc.PrimaryCalendarTimeZone(ctx, token)
	if err != nil {
		logger.Sugar.Warnw("failed to read calendar timezone, falling back to UTC", "error", err)
		timeZone = ""
	}
	if timeZone == "" {
		timeZone = "UTC"
	}

	var expiryMs int64
	if !token.Expiry.IsZero() {
		expiryMs = token.Expiry.UnixMilli()
	}

	user, err := u.userRepo.FindByGoogleID(info.Id)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &authdomain.User{
			GoogleUserID:  info.Id,
			Email:         info.Email,
			AccessToken:   token.AccessToken,
			RefreshToken:  token.RefreshToken,
			TokenExpiryMs: expiryMs,
			TimeZone:      timeZone,
			CalendarID:    "primary",
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	}

	user.Email = info.Email
	user.AccessToken = token.AccessToken
	user.TokenExpiryMs = expiryMs
	user.TimeZone = timeZone
	// A re-consent without offline access yields no refresh token; the
	// stored one stays valid and must be kept.
	if token.RefreshToken != "" {
		user.RefreshToken = token.RefreshToken
	}
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) GetUser(userID string) (*authdomain.User, error) {
	return u.userRepo.FindByID(userID)
}
