package usecase

import (
	"context"
	"time"

	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"
)

// ReminderUsecase runs the nightly reminder sweep.
type ReminderUsecase interface {
	// RunSweep checks every candidate user against the 8pm local-time
	// window and returns the addresses actually reminded. One user's
	// failure never aborts the sweep.
	RunSweep(ctx context.Context, now time.Time) ([]string, error)
}

// MailService is the external mail collaborator. Implemented by
// pkg/google (Gmail send); faked in tests.
type MailService interface {
	SendPlainText(ctx context.Context, creds authdomain.Credentials, to, from, subject, body string) error
}
