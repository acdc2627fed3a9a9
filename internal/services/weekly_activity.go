package services

import (
	"time"

	"github.com/embersapp/embers/internal/models"
)

const weeklyActivityDays = 7

// WeeklyActivity buckets raw log entries into the trailing seven calendar
// days, oldest first, so the last bucket is today. Entries are not
// deduplicated: two habits completed on the same day count twice.
func WeeklyActivity(logs []models.CompletionLog, now time.Time, location *time.Location) []int {
	today := StartOfDay(now, location)

	buckets := make([]int, weeklyActivityDays)
	keys := make(map[string]int, weeklyActivityDays)
	for offset := 0; offset < weeklyActivityDays; offset++ {
		day := today.AddDate(0, 0, offset-(weeklyActivityDays-1))
		keys[day.Format(dayKeyLayout)] = offset
	}

	for _, entry := range logs {
		if index, ok := keys[DayKey(entry.CompletedAt, location)]; ok {
			buckets[index]++
		}
	}
	return buckets
}
