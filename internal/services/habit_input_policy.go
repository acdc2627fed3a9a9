package services

import (
	"errors"
	"strings"

	"github.com/embersapp/embers/internal/models"
)

var (
	ErrHabitTitleRequired    = errors.New("habit title required")
	ErrHabitFrequencyInvalid = errors.New("habit frequency invalid")
)

type HabitInput struct {
	Title       string
	Description string
	Frequency   string
}

func NormalizeHabitInput(raw HabitInput) (HabitInput, error) {
	input := HabitInput{
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Description),
		Frequency:   strings.ToLower(strings.TrimSpace(raw.Frequency)),
	}
	if input.Frequency == "" {
		input.Frequency = models.FrequencyDaily
	}

	if input.Title == "" {
		return HabitInput{}, ErrHabitTitleRequired
	}
	if !models.ValidFrequency(input.Frequency) {
		return HabitInput{}, ErrHabitFrequencyInvalid
	}
	return input, nil
}
