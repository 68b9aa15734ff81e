package usecase

import (
	"context"
	"fmt"
	"strings"

	journalrepo "github.com/EasyEatsBodega/do-your-daily-journal/internal/journal/repository"
)

// imageUsecase implements ImageUsecase
type imageUsecase struct {
	entryRepo journalrepo.EntryRepository
	generator ImageGenerator
}

// NewImageUsecase creates a new instance of imageUsecase
func NewImageUsecase(entryRepo journalrepo.EntryRepository, generator ImageGenerator) ImageUsecase {
	return &imageUsecase{
		entryRepo: entryRepo,
		generator: generator,
	}
}

func (u *imageUsecase) GenerateForDate(ctx context.Context, userID, date string) (string, error) {
	if !u.generator.IsConfigured() {
		return "", ErrNotConfigured
	}

	entry, err := u.entryRepo.GetByUserAndDate(userID, date)
	if err != nil {
		return "", err
	}
	if entry == nil {
		return "", ErrEntryNotFound
	}

	prompt := buildImagePrompt(entry.Date, entry.Accomplished, entry.CouldDoBetter, entry.ProudHappy)

	imageURL, err := u.generator.GenerateImage(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}

	if err := u.entryRepo.SetImageURL(entry.ID, imageURL); err != nil {
		return "", err
	}
	return imageURL, nil
}

func buildImagePrompt(date, accomplished, couldDoBetter, proudHappy string) string {
	return strings.Join([]string{
		fmt.Sprintf("Create a single cinematic illustration capturing the vibe of this day (%s).", date),
		fmt.Sprintf("Main scene: %s.", accomplished),
		fmt.Sprintf("Subtle theme of improvement: %s.", couldDoBetter),
		fmt.Sprintf("Emotional highlight: %s.", proudHappy),
		"Keep it wholesome, grounded, and personal. No text in the image.",
		"Style: cinematic lighting, detailed, warm tone, consistent character appearance.",
	}, " ")
}
