package db

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/embersapp/embers/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "embers-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func insertHabit(t *testing.T, database *gorm.DB, userID uint, title string) models.Habit {
	t.Helper()

	now := time.Now().UTC()
	habit := models.Habit{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Frequency: models.FrequencyDaily,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := database.Create(&habit).Error; err != nil {
		t.Fatalf("insert habit: %v", err)
	}
	return habit
}

func completionEntry(habit models.Habit, completedAt time.Time) models.CompletionLog {
	return models.CompletionLog{
		ID:          uuid.NewString(),
		UserID:      habit.UserID,
		HabitID:     habit.ID,
		HabitTitle:  habit.Title,
		CompletedAt: completedAt,
		Day:         completedAt.UTC().Format("2006-01-02"),
		CreatedAt:   completedAt,
	}
}

func TestCreditCompletionRejectsSecondLogForSameDay(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewHabitRepository(database)
	habit := insertHabit(t, database, 1, "Stretch")

	now := time.Now().UTC()
	habit.StreakCount = 1
	habit.LastCompleted = now.Format("2006-01-02")

	first := completionEntry(habit, now)
	if err := repo.CreditCompletion(&habit, &first); err != nil {
		t.Fatalf("first completion: %v", err)
	}

	habit.StreakCount = 2
	second := completionEntry(habit, now.Add(time.Hour))
	err := repo.CreditCompletion(&habit, &second)
	if err == nil {
		t.Fatal("expected unique day index to reject second log")
	}
	if !strings.Contains(err.Error(), "UNIQUE constraint failed") {
		t.Fatalf("expected unique constraint error, got %v", err)
	}

	// The rejected transaction must not have touched the counter.
	stored, found, err := repo.FindByIDForUser(habit.ID, habit.UserID)
	if err != nil || !found {
		t.Fatalf("reload habit: found=%v err=%v", found, err)
	}
	if stored.StreakCount != 1 {
		t.Fatalf("expected streak 1 after rejected duplicate, got %d", stored.StreakCount)
	}

	logs := NewCompletionLogRepository(database)
	count, err := logs.CountByUser(habit.UserID)
	if err != nil {
		t.Fatalf("count logs: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 log row, got %d", count)
	}
}

func TestDeleteCascadeRemovesOnlyOwnedRows(t *testing.T) {
	database := openTestDatabase(t)
	repo := NewHabitRepository(database)
	logs := NewCompletionLogRepository(database)

	doomed := insertHabit(t, database, 1, "Doomed")
	kept := insertHabit(t, database, 1, "Kept")

	now := time.Now().UTC()
	for _, habit := range []models.Habit{doomed, kept} {
		entry := completionEntry(habit, now)
		if err := database.Create(&entry).Error; err != nil {
			t.Fatalf("insert log: %v", err)
		}
	}

	if err := repo.DeleteCascade(doomed.ID, 1); err != nil {
		t.Fatalf("delete cascade: %v", err)
	}

	if _, found, err := repo.FindByIDForUser(doomed.ID, 1); err != nil || found {
		t.Fatalf("expected habit gone, found=%v err=%v", found, err)
	}
	if _, found, err := repo.FindByIDForUser(kept.ID, 1); err != nil || !found {
		t.Fatalf("expected other habit kept, found=%v err=%v", found, err)
	}

	remaining, err := logs.ListByUser(1)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(remaining) != 1 || remaining[0].HabitID != kept.ID {
		t.Fatalf("expected only the kept habit's log, got %+v", remaining)
	}
}

func TestExistsForHabitInRange(t *testing.T) {
	database := openTestDatabase(t)
	logs := NewCompletionLogRepository(database)
	habit := insertHabit(t, database, 7, "Water plants")

	completedAt := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	entry := completionEntry(habit, completedAt)
	if err := database.Create(&entry).Error; err != nil {
		t.Fatalf("insert log: %v", err)
	}

	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	exists, err := logs.ExistsForHabitInRange(habit.ID, 7, dayStart, dayEnd)
	if err != nil {
		t.Fatalf("exists in range: %v", err)
	}
	if !exists {
		t.Fatal("expected completion inside the day range")
	}

	exists, err = logs.ExistsForHabitInRange(habit.ID, 7, dayEnd, dayEnd.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("exists next day: %v", err)
	}
	if exists {
		t.Fatal("expected no completion on the next day")
	}

	exists, err = logs.ExistsForHabitInRange(habit.ID, 99, dayStart, dayEnd)
	if err != nil {
		t.Fatalf("exists other user: %v", err)
	}
	if exists {
		t.Fatal("expected no completion for another user")
	}
}
