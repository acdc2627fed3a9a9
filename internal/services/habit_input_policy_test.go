package services

import (
	"errors"
	"testing"

	"github.com/embersapp/embers/internal/models"
)

func TestNormalizeHabitInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     HabitInput
		want    HabitInput
		wantErr error
	}{
		{
			name: "valid input trimmed",
			raw:  HabitInput{Title: "  Read 10 pages ", Description: " why it matters ", Frequency: "Daily"},
			want: HabitInput{Title: "Read 10 pages", Description: "why it matters", Frequency: models.FrequencyDaily},
		},
		{
			name: "empty frequency defaults to daily",
			raw:  HabitInput{Title: "Run"},
			want: HabitInput{Title: "Run", Frequency: models.FrequencyDaily},
		},
		{
			name:    "blank title rejected",
			raw:     HabitInput{Title: "   ", Frequency: "daily"},
			wantErr: ErrHabitTitleRequired,
		},
		{
			name:    "unknown frequency rejected",
			raw:     HabitInput{Title: "Run", Frequency: "hourly"},
			wantErr: ErrHabitFrequencyInvalid,
		},
		{
			name: "weekly and monthly accepted",
			raw:  HabitInput{Title: "Review budget", Frequency: "monthly"},
			want: HabitInput{Title: "Review budget", Frequency: models.FrequencyMonthly},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeHabitInput(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("NormalizeHabitInput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
