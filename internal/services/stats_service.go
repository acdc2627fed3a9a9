package services

import (
	"time"

	"github.com/embersapp/embers/internal/models"
)

type StatsHabitReader interface {
	ListByUser(userID uint) ([]models.Habit, error)
}

type StatsLogReader interface {
	ListByUser(userID uint) ([]models.CompletionLog, error)
	ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.CompletionLog, error)
	CountByUser(userID uint) (int64, error)
}

type StatsService struct {
	habits   StatsHabitReader
	logs     StatsLogReader
	location *time.Location
}

type StatsOverview struct {
	HabitStreaks   []HabitStreak
	Global         GlobalStats
	WeeklyActivity []int
}

func NewStatsService(habits StatsHabitReader, logs StatsLogReader, location *time.Location) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{
		habits:   habits,
		logs:     logs,
		location: location,
	}
}

// BuildOverview recomputes every displayed statistic from the completion
// log. Log entries whose habit has since been deleted contribute to the raw
// total but to no per-habit streak.
func (service *StatsService) BuildOverview(userID uint, now time.Time) (StatsOverview, error) {
	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return StatsOverview{}, err
	}
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return StatsOverview{}, err
	}
	totalLogCount, err := service.logs.CountByUser(userID)
	if err != nil {
		return StatsOverview{}, err
	}

	// The weekly chart only needs the trailing window, so that scan is
	// bounded even when the full log has years of history.
	weekStart := StartOfDay(now, service.location).AddDate(0, 0, -(weeklyActivityDays - 1))
	_, tomorrow := DayRange(now, service.location)
	weekLogs, err := service.logs.ListByUserRange(userID, weekStart, tomorrow)
	if err != nil {
		return StatsOverview{}, err
	}

	streaks := BuildHabitStreaks(habits, logs, now, service.location)
	return StatsOverview{
		HabitStreaks:   streaks,
		Global:         BuildGlobalStats(streaks, totalLogCount),
		WeeklyActivity: WeeklyActivity(weekLogs, now, service.location),
	}, nil
}
