package usecase

import (
	"context"
	"time"

	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"
	authrepo "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/repository"
	journaldomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/domain"
	journalrepo "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/repository"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/logger"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/timeutil"

	"golang.org/x/oauth2"
)

const (
	reminderHour = 20
	// The window is 5 minutes wide so the external trigger's polling
	// granularity cannot skip past it.
	reminderWindowMinutes = 5

	reminderSubject = "Time to do your daily journal"
)

// reminderUsecase implements ReminderUsecase
type reminderUsecase struct {
	userRepo   authrepo.UserRepository
	entryRepo  journalrepo.EntryRepository
	mailSvc    MailService
	appBaseURL string
}

// NewReminderUsecase creates a new instance of reminderUsecase
func NewReminderUsecase(userRepo authrepo.UserRepository, entryRepo journalrepo.EntryRepository, mailSvc MailService, appBaseURL string) ReminderUsecase {
	return &reminderUsecase{
		userRepo:   userRepo,
		entryRepo:  entryRepo,
		mailSvc:    mailSvc,
		appBaseURL: appBaseURL,
	}
}

func (u *reminderUsecase) RunSweep(ctx context.Context, now time.Time) ([]string, error) {
	users, err := u.userRepo.FindAllWithRefreshToken()
	if err != nil {
		return nil, err
	}

	sent := make([]string, 0)
	for _, user := range users {
		reminded, err := u.remind(ctx, user, now)
		if err != nil {
			logger.Sugar.Warnw("reminder failed", "user", user.Email, "error", err)
			continue
		}
		if reminded {
			sent = append(sent, user.Email)
		}
	}
	return sent, nil
}

// remind sends at most one reminder per user per local calendar day,
// and only inside the 20:00-20:04 local window when today's entry is
// not yet submitted.
func (u *reminderUsecase) remind(ctx context.Context, user *authdomain.User, now time.Time) (bool, error) {
	parts, err := timeutil.ZonedParts(now, user.TimeZone)
	if err != nil {
		return false, err
	}

	if parts.Hour != reminderHour || parts.Minute >= reminderWindowMinutes {
		return false, nil
	}
	if user.LastReminderSentYMD != nil && *user.LastReminderSentYMD == parts.YMD {
		return false, nil
	}

	entry, err := u.entryRepo.GetByUserAndDate(user.ID, parts.YMD)
	if err != nil {
		return false, err
	}
	if entry != nil && entry.Status == journaldomain.StatusSubmitted {
		return false, nil
	}

	body := "Quick 2-minute check-in. Write today's entry here: " + u.appBaseURL + "/today"
	if err := u.mailSvc.SendPlainText(ctx, u.credentialsFor(user), user.Email, user.Email, reminderSubject, body); err != nil {
		return false, err
	}

	if err := u.userRepo.SetLastReminderSent(user.ID, parts.YMD); err != nil {
		return false, err
	}
	return true, nil
}

func (u *reminderUsecase) credentialsFor(user *authdomain.User) authdomain.Credentials {
	userID := user.ID
	return authdomain.Credentials{
		AccessToken:  user.AccessToken,
		RefreshToken: user.RefreshToken,
		ExpiryMs:     user.TokenExpiryMs,
		OnRefresh: func(token *oauth2.Token) error {
			return u.userRepo.UpdateTokens(userID, token.AccessToken, token.RefreshToken, token.Expiry.UnixMilli())
		},
	}
}
