package usecase

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured is returned when no image provider key is set.
	ErrNotConfigured = errors.New("image generation not configured")
	// ErrEntryNotFound is returned when the date has no entry to illustrate.
	ErrEntryNotFound = errors.New("entry not found")
)

// ImageUsecase turns a day's entry text into an illustrative image.
type ImageUsecase interface {
	GenerateForDate(ctx context.Context, userID, date string) (string, error)
}

// ImageGenerator is the external image-generation collaborator.
// Implemented by pkg/openai; faked in tests.
type ImageGenerator interface {
	IsConfigured() bool
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
