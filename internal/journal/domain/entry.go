package domain

import "time"

// Status is the lifecycle state of a journal entry.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
)

// Entry is one user's journal record for a single calendar day. Date is
// a YMD string, not an instant; (UserID, Date) is unique.
type Entry struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	UserID            string    `json:"userId" gorm:"uniqueIndex:idx_entries_user_date;not null"`
	Date              string    `json:"date" gorm:"uniqueIndex:idx_entries_user_date;not null"`
	Status            Status    `json:"status" gorm:"default:DRAFT"`
	Accomplished      string    `json:"accomplished"`
	CouldDoBetter     string    `json:"couldDoBetter"`
	ProudHappy        string    `json:"proudHappy"`
	ImageURL          *string   `json:"imageUrl"`
	ReferenceImageURL *string   `json:"referenceImageUrl"`
	CalendarEventID   *string   `json:"calendarEventId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Fields carries the three prompt answers through draft saves and
// submissions.
type Fields struct {
	Accomplished  string `json:"accomplished"`
	CouldDoBetter string `json:"couldDoBetter"`
	ProudHappy    string `json:"proudHappy"`
}

// CalendarEvent is the all-day calendar projection of a submitted
// entry. EndDate is exclusive, the day after StartDate.
type CalendarEvent struct {
	Summary     string
	Description string
	StartDate   string
	EndDate     string
}
