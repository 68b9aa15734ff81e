package usecase

import (
	"context"
	"errors"

	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"
	"github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/domain"
)

var (
	// ErrUserNotFound is returned when the session points at no user.
	ErrUserNotFound = errors.New("user not found")
	// ErrEntryNotFound is returned when no entry exists for a date.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrFieldsRequired is returned when a submission misses a prompt answer.
	ErrFieldsRequired = errors.New("all fields are required")
	// ErrDateRequired is returned by the dated variants when no date is given.
	ErrDateRequired = errors.New("date is required")
	// ErrInvalidDate is returned for a malformed YMD string.
	ErrInvalidDate = errors.New("invalid date")
	// ErrFutureDate is returned for dates past the user's local today.
	ErrFutureDate = errors.New("future dates are not allowed")
)

// SubmitResult is what a successful submission reports back: the stored
// entry and the calendar event it is mirrored to, "" when the mirror
// failed or has not been created yet.
type SubmitResult struct {
	Entry           *domain.Entry
	CalendarEventID string
}

// JournalUsecase covers the entry lifecycle: lazy draft creation,
// draft saves, submissions and reads.
type JournalUsecase interface {
	GetOrCreateToday(ctx context.Context, userID string) (*domain.Entry, error)
	SaveDraft(ctx context.Context, userID string, fields domain.Fields) (*domain.Entry, error)
	SaveDraftForDate(ctx context.Context, userID, date string, fields domain.Fields) (*domain.Entry, error)
	Submit(ctx context.Context, userID string, fields domain.Fields) (*SubmitResult, error)
	SubmitForDate(ctx context.Context, userID, date string, fields domain.Fields) (*SubmitResult, error)
	GetByDate(userID, date string) (*domain.Entry, error)
	ListAll(userID string) ([]*domain.Entry, error)
	SetReferenceImage(ctx context.Context, userID, dataURL string) (*domain.Entry, error)
}

// CalendarService is the external calendar collaborator. Implemented by
// pkg/google; faked in tests.
type CalendarService interface {
	InsertEvent(ctx context.Context, creds authdomain.Credentials, calendarID string, event *domain.CalendarEvent) (string, error)
	PatchEvent(ctx context.Context, creds authdomain.Credentials, calendarID, eventID string, event *domain.CalendarEvent) error
}
