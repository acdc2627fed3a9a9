package services

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey collapses an instant to its local calendar date, so two instants
// compare equal iff they fall on the same day in the given location.
func DayKey(value time.Time, location *time.Location) string {
	return StartOfDay(value, location).Format(dayKeyLayout)
}

func StartOfDay(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := StartOfDay(value, location)
	return start, start.AddDate(0, 0, 1)
}

func PreviousDay(value time.Time) time.Time {
	return value.AddDate(0, 0, -1)
}
