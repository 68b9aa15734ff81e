package usecase

import (
	"context"
	"strings"

	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"
	authrepo "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/repository"
	"github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/domain"
	"github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/repository"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/logger"
	"github.com/EasyEatsBodega/do-your-daily-journal/pkg/timeutil"

	"golang.org/x/oauth2"
)

const eventSummary = "Daily Journal ✅"

// journalUsecase implements JournalUsecase
type journalUsecase struct {
	entryRepo   repository.EntryRepository
	userRepo    authrepo.UserRepository
	calendarSvc CalendarService
	appBaseURL  string
}

// NewJournalUsecase creates a new instance of journalUsecase
func NewJournalUsecase(entryRepo repository.EntryRepository, userRepo authrepo.UserRepository, calendarSvc CalendarService, appBaseURL string) JournalUsecase {
	return &journalUsecase{
		entryRepo:   entryRepo,
		userRepo:    userRepo,
		calendarSvc: calendarSvc,
		appBaseURL:  appBaseURL,
	}
}

func (u *journalUsecase) GetOrCreateToday(ctx context.Context, userID string) (*domain.Entry, error) {
	_, today, err := u.userToday(userID)
	if err != nil {
		return nil, err
	}
	return u.entryRepo.CreateDraft(userID, today)
}

func (u *journalUsecase) SaveDraft(ctx context.Context, userID string, fields domain.Fields) (*domain.Entry, error) {
	_, today, err := u.userToday(userID)
	if err != nil {
		return nil, err
	}
	return u.saveDraft(userID, today, fields)
}

func (u *journalUsecase) SaveDraftForDate(ctx context.Context, userID, date string, fields domain.Fields) (*domain.Entry, error) {
	if date == "" {
		return nil, ErrDateRequired
	}
	_, today, err := u.userToday(userID)
	if err != nil {
		return nil, err
	}
	if err := checkDate(date, today); err != nil {
		return nil, err
	}
	return u.saveDraft(userID, date, fields)
}

// saveDraft upserts the prompt answers. A SUBMITTED entry keeps its
// status: a background autosave must not silently downgrade a day the
// user already finalized.
func (u *journalUsecase) saveDraft(userID, date string, fields domain.Fields) (*domain.Entry, error) {
	entry, err := u.entryRepo.CreateDraft(userID, date)
	if err != nil {
		return nil, err
	}
	entry.Accomplished = fields.Accomplished
	entry.CouldDoBetter = fields.CouldDoBetter
	entry.ProudHappy = fields.ProudHappy
	if err := u.entryRepo.Save(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (u *journalUsecase) Submit(ctx context.Context, userID string, fields domain.Fields) (*SubmitResult, error) {
	user, today, err := u.userToday(userID)
	if err != nil {
		return nil, err
	}
	return u.submit(ctx, user, today, fields)
}

func (u *journalUsecase) SubmitForDate(ctx context.Context, userID, date string, fields domain.Fields) (*SubmitResult, error) {
	if date == "" {
		return nil, ErrDateRequired
	}
	user, today, err := u.userToday(userID)
	if err != nil {
		return nil, err
	}
	if err := checkDate(date, today); err != nil {
		return nil, err
	}
	return u.submit(ctx, user, date, fields)
}

func (u *journalUsecase) submit(ctx context.Context, user *authdomain.User, date string, fields domain.Fields) (*SubmitResult, error) {
	if fields.Accomplished == "" || fields.CouldDoBetter == "" || fields.ProudHappy == "" {
		return nil, ErrFieldsRequired
	}

	entry, err := u.entryRepo.CreateDraft(user.ID, date)
	if err != nil {
		return nil, err
	}
	entry.Accomplished = fields.Accomplished
	entry.CouldDoBetter = fields.CouldDoBetter
	entry.ProudHappy = fields.ProudHappy
	entry.Status = domain.StatusSubmitted
	if err := u.entryRepo.Save(entry); err != nil {
		return nil, err
	}

	// The entry is authoritative locally; the calendar mirror is
	// best-effort and must not undo the submission.
	eventID := u.mirrorToCalendar(ctx, user, entry)

	return &SubmitResult{Entry: entry, CalendarEventID: eventID}, nil
}

// mirrorToCalendar upserts the all-day event for a submitted entry and
// returns the event id currently linked to it. Failures are logged and
// swallowed.
func (u *journalUsecase) mirrorToCalendar(ctx context.Context, user *authdomain.User, entry *domain.Entry) string {
	endDate, err := timeutil.NextDate(entry.Date)
	if err != nil {
		logger.Sugar.Errorw("calendar event error", "user", user.ID, "date", entry.Date, "error", err)
		return ""
	}

	event := &domain.CalendarEvent{
		Summary: eventSummary,
		Description: strings.Join([]string{
			"Accomplished: " + shorten(entry.Accomplished, 180),
			"Better: " + shorten(entry.CouldDoBetter, 120),
			"Proud: " + shorten(entry.ProudHappy, 120),
			"",
			"Open full entry: " + u.appBaseURL + "/entry/" + entry.Date,
		}, "\n"),
		StartDate: entry.Date,
		EndDate:   endDate,
	}

	creds := u.credentialsFor(user)

	if entry.CalendarEventID != nil && *entry.CalendarEventID != "" {
		if err := u.calendarSvc.PatchEvent(ctx, creds, user.CalendarID, *entry.CalendarEventID, event); err != nil {
			logger.Sugar.Errorw("calendar event error", "user", user.ID, "date", entry.Date, "error", err)
		}
		return *entry.CalendarEventID
	}

	eventID, err := u.calendarSvc.InsertEvent(ctx, creds, user.CalendarID, event)
	if err != nil {
		logger.Sugar.Errorw("calendar event error", "user", user.ID, "date", entry.Date, "error", err)
		return ""
	}
	entry.CalendarEventID = &eventID
	if err := u.entryRepo.SetCalendarEventID(entry.ID, eventID); err != nil {
		logger.Sugar.Errorw("failed to persist calendar event id", "entry", entry.ID, "error", err)
	}
	return eventID
}

func (u *journalUsecase) GetByDate(userID, date string) (*domain.Entry, error) {
	entry, err := u.entryRepo.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

func (u *journalUsecase) ListAll(userID string) ([]*domain.Entry, error) {
	return u.entryRepo.ListByUser(userID)
}

func (u *journalUsecase) SetReferenceImage(ctx context.Context, userID, dataURL string) (*domain.Entry, error) {
	_, today, err := u.userToday(userID)
	if err != nil {
		return nil, err
	}
	entry, err := u.entryRepo.CreateDraft(userID, today)
	if err != nil {
		return nil, err
	}
	if err := u.entryRepo.SetReferenceImageURL(entry.ID, dataURL); err != nil {
		return nil, err
	}
	entry.ReferenceImageURL = &dataURL
	return entry, nil
}

// userToday resolves the user and their current local calendar date.
func (u *journalUsecase) userToday(userID string) (*authdomain.User, string, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}
	today, err := timeutil.TodayYMD(user.TimeZone)
	if err != nil {
		return nil, "", err
	}
	return user, today, nil
}

func (u *journalUsecase) credentialsFor(user *authdomain.User) authdomain.Credentials {
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

// checkDate rejects malformed dates and dates past the user's local
// today. YMD strings order lexically, so a plain compare is enough.
func checkDate(date, today string) error {
	if !timeutil.IsValidYMD(date) {
		return ErrInvalidDate
	}
	if date > today {
		return ErrFutureDate
	}
	return nil
}

// shorten truncates to max runes, ellipsis-terminated when cut.
func shorten(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}
