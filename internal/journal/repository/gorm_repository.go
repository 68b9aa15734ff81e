package repository

import (
	"errors"
	"time"

	"github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormEntryRepository implements EntryRepository using GORM
type gormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GORM-based EntryRepository
func NewGormEntryRepository(db *gorm.DB) EntryRepository {
	return &gormEntryRepository{db: db}
}

func (r *gormEntryRepository) GetByUserAndDate(userID, date string) (*domain.Entry, error) {
	var entry domain.Entry
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *gormEntryRepository) ListByUser(userID string) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&entries).Error
	return entries, err
}

func (r *gormEntryRepository) CreateDraft(userID, date string) (*domain.Entry, error) {
	entry := &domain.Entry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		Status:    domain.StatusDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	// Two racing creates both hit the unique index; the loser's insert
	// is a no-op and the refetch below returns the winner's row.
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(entry).Error
	if err != nil {
		return nil, err
	}
	return r.GetByUserAndDate(userID, date)
}

func (r *gormEntryRepository) Save(entry *domain.Entry) error {
	entry.UpdatedAt = time.Now()
	return r.db.Save(entry).Error
}

func (r *gormEntryRepository) SetCalendarEventID(entryID, eventID string) error {
	return r.updateColumn(entryID, "calendar_event_id", eventID)
}

func (r *gormEntryRepository) SetImageURL(entryID, imageURL string) error {
	return r.updateColumn(entryID, "image_url", imageURL)
}

func (r *gormEntryRepository) SetReferenceImageURL(entryID, dataURL string) error {
	return r.updateColumn(entryID, "reference_image_url", dataURL)
}

func (r *gormEntryRepository) updateColumn(entryID, column, value string) error {
	return r.db.Model(&domain.Entry{}).Where("id = ?", entryID).
		Updates(map[string]interface{}{
			column:       value,
			"updated_at": time.Now(),
		}).Error
}
