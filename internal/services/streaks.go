package services

import (
	"time"

	"github.com/embersapp/embers/internal/models"
)

type HabitStreak struct {
	HabitID          string
	Title            string
	CurrentStreak    int
	TotalCompletions int
}

type GlobalStats struct {
	Total      int64
	BestStreak int
}

// UniqueCompletionDays deduplicates a habit's log entries to the set of
// calendar days with at least one completion.
func UniqueCompletionDays(logs []models.CompletionLog, habitID string, location *time.Location) map[string]struct{} {
	days := make(map[string]struct{})
	for _, entry := range logs {
		if entry.HabitID != habitID {
			continue
		}
		days[DayKey(entry.CompletedAt, location)] = struct{}{}
	}
	return days
}

// CurrentStreak counts consecutive completed days ending today or, if today
// is still unlogged, yesterday. A gap at both anchors means the chain is
// broken regardless of older entries.
func CurrentStreak(days map[string]struct{}, now time.Time, location *time.Location) int {
	today := StartOfDay(now, location)
	yesterday := PreviousDay(today)

	cursor := today
	if _, ok := days[cursor.Format(dayKeyLayout)]; !ok {
		cursor = yesterday
		if _, ok := days[cursor.Format(dayKeyLayout)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := days[cursor.Format(dayKeyLayout)]; !ok {
			return streak
		}
		streak++
		cursor = PreviousDay(cursor)
	}
}

// BuildHabitStreaks derives per-habit statistics from the completion log
// alone; the denormalized streak_count field is never consulted here.
func BuildHabitStreaks(habits []models.Habit, logs []models.CompletionLog, now time.Time, location *time.Location) []HabitStreak {
	streaks := make([]HabitStreak, 0, len(habits))
	for _, habit := range habits {
		days := UniqueCompletionDays(logs, habit.ID, location)
		streaks = append(streaks, HabitStreak{
			HabitID:          habit.ID,
			Title:            habit.Title,
			CurrentStreak:    CurrentStreak(days, now, location),
			TotalCompletions: len(days),
		})
	}
	return streaks
}

// BuildGlobalStats reports the raw log-row count (not deduplicated) and the
// best current streak across habits, zero when there are none.
func BuildGlobalStats(streaks []HabitStreak, totalLogCount int64) GlobalStats {
	best := 0
	for _, streak := range streaks {
		if streak.CurrentStreak > best {
			best = streak.CurrentStreak
		}
	}
	return GlobalStats{Total: totalLogCount, BestStreak: best}
}
