package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8, hour)
	assert.Equal(t, 30, minute)

	for _, invalid := range []string{"", "8", "24:00", "12:60", "ab:cd", "12-30"} {
		_, _, err := ParseClock(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestBuildSession_DayShift(t *testing.T) {
	wt := WorkTime{ID: "wt-1", StartTime: "08:00", EndTime: "17:00", LateToleranceMinutes: 15}
	date := time.Date(2025, 3, 10, 13, 45, 0, 0, time.UTC)

	session, err := BuildSession("ws-1", wt, date, 2*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), session.Date)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), session.Start)
	assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC), session.End)
	assert.Equal(t, time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC), session.WindowStart)
	assert.Equal(t, time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC), session.WindowEnd)
}

func TestBuildSession_OvernightShift(t *testing.T) {
	wt := WorkTime{ID: "wt-2", StartTime: "22:00", EndTime: "06:00"}
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	session, err := BuildSession("ws-1", wt, date, 2*time.Hour)
	require.NoError(t, err)

	// The session keeps its start date even though it ends the next day.
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), session.Date)
	assert.Equal(t, time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC), session.Start)
	assert.Equal(t, time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC), session.End)
	assert.Equal(t, time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC), session.WindowStart)
	assert.Equal(t, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC), session.WindowEnd)
}

func TestBuildSession_InvalidClock(t *testing.T) {
	_, err := BuildSession("ws-1", WorkTime{StartTime: "25:00", EndTime: "17:00"}, time.Now(), 0)
	assert.Error(t, err)
}

func TestCoveringAssignment(t *testing.T) {
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	assignments := []ScheduleAssignment{
		{ID: "a-1", WorkScheduleID: "ws-1", StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), EndDate: &end},
		{ID: "a-2", WorkScheduleID: "ws-2", StartDate: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)},
	}

	got := CoveringAssignment(assignments, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NotNil(t, got)
	assert.Equal(t, "a-1", got.ID)

	// End date is inclusive.
	got = CoveringAssignment(assignments, time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC))
	require.NotNil(t, got)
	assert.Equal(t, "a-1", got.ID)

	// Open-ended assignment covers everything from its start.
	got = CoveringAssignment(assignments, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, got)
	assert.Equal(t, "a-2", got.ID)

	assert.Nil(t, CoveringAssignment(assignments, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)))
}

func TestISOWeekday(t *testing.T) {
	// 2025-03-10 is a Monday, 2025-03-16 a Sunday.
	assert.Equal(t, 1, ISOWeekday(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 7, ISOWeekday(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestTruncateToDate_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	truncated := TruncateToDate(time.Date(2025, 3, 10, 23, 59, 0, 0, loc))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), truncated)
	assert.Equal(t, loc, truncated.Location())
}
