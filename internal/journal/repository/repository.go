package repository

import "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/domain"

// EntryRepository defines the interface for journal entry data access
type EntryRepository interface {
	// GetByUserAndDate returns the entry for one calendar day, nil when
	// none exists.
	GetByUserAndDate(userID, date string) (*domain.Entry, error)

	// ListByUser returns all of a user's entries, newest date first.
	ListByUser(userID string) ([]*domain.Entry, error)

	// CreateDraft inserts an empty DRAFT for the date and returns the
	// stored row. Safe to call concurrently: the (user_id, date) unique
	// index plus insert-or-fetch guarantees a single row.
	CreateDraft(userID, date string) (*domain.Entry, error)

	// Save persists every field of an existing entry.
	Save(entry *domain.Entry) error

	SetCalendarEventID(entryID, eventID string) error

	SetImageURL(entryID, imageURL string) error

	SetReferenceImageURL(entryID, dataURL string) error
}
