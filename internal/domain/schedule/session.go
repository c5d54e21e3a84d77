package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a "HH:MM" local clock time.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid clock time %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock time %q", s)
	}
	return hour, minute, nil
}

// CoveringAssignment returns the assignment whose date range covers
// date, or nil. At most one can match because assignments for a user
// never overlap.
func CoveringAssignment(assignments []ScheduleAssignment, date time.Time) *ScheduleAssignment {
	day := TruncateToDate(date)
	for i := range assignments {
		a := &assignments[i]
		if TruncateToDate(a.StartDate).After(day) {
			continue
		}
		if a.EndDate != nil && TruncateToDate(*a.EndDate).Before(day) {
			continue
		}
		return a
	}
	return nil
}

// BuildSession constructs the concrete session window for a work time
// on the given date. If the end clock is before the start clock the
// shift is overnight and the end rolls to the next day. The scan
// window extends the session by the given duration on both sides.
func BuildSession(workScheduleID string, wt WorkTime, date time.Time, window time.Duration) (WorkSession, error) {
	startHour, startMinute, err := ParseClock(wt.StartTime)
	if err != nil {
		return WorkSession{}, fmt.Errorf("work time %s start: %w", wt.ID, err)
	}
	endHour, endMinute, err := ParseClock(wt.EndTime)
	if err != nil {
		return WorkSession{}, fmt.Errorf("work time %s end: %w", wt.ID, err)
	}

	day := TruncateToDate(date)
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMinute, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMinute, 0, 0, day.Location())

	// Overnight shift: end clock precedes start clock on the same day.
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	return WorkSession{
		WorkScheduleID: workScheduleID,
		WorkTime:       wt,
		Date:           day,
		Start:          start,
		End:            end,
		WindowStart:    start.Add(-window),
		WindowEnd:      end.Add(window),
	}, nil
}

// TruncateToDate strips the time-of-day component, keeping the location.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ISOWeekday returns the ISO day of week, 1=Monday .. 7=Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
