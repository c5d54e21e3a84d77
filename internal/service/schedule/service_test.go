package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensia/attendance-backend-go/internal/domain/schedule"
)

type fakeScheduleRepo struct {
	assignments []schedule.ScheduleAssignment
	// dayWorkTimes maps ISO weekday to a work time; missing days are off.
	dayWorkTimes map[int]*schedule.WorkTime
}

func (f *fakeScheduleRepo) GetAssignmentForDate(ctx context.Context, userID string, date time.Time) (*schedule.ScheduleAssignment, error) {
	return schedule.CoveringAssignment(f.assignments, date), nil
}

func (f *fakeScheduleRepo) GetDayWorkTime(ctx context.Context, workScheduleID string, dayOfWeek int) (*schedule.WorkTime, error) {
	return f.dayWorkTimes[dayOfWeek], nil
}

func (f *fakeScheduleRepo) HasAnyAssignment(ctx context.Context, userID string) (bool, error) {
	return len(f.assignments) > 0, nil
}

// Monday-to-Friday 08:00-17:00 schedule assigned from March 2025 onward.
func weekdayRepo(start, end string) *fakeScheduleRepo {
	wt := &schedule.WorkTime{ID: "wt-1", StartTime: start, EndTime: end, LateToleranceMinutes: 15}
	return &fakeScheduleRepo{
		assignments: []schedule.ScheduleAssignment{
			{ID: "a-1", UserID: "u-1", WorkScheduleID: "ws-1", StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
		dayWorkTimes: map[int]*schedule.WorkTime{1: wt, 2: wt, 3: wt, 4: wt, 5: wt},
	}
}

func TestSessionService_ResolveDay(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(weekdayRepo("08:00", "17:00"), 2*time.Hour)

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	resolved, err := svc.ResolveDay(ctx, "u-1", monday)
	require.NoError(t, err)
	assert.Equal(t, schedule.DayWorking, resolved.Kind)
	assert.Equal(t, "ws-1", resolved.WorkScheduleID)
	require.NotNil(t, resolved.WorkTime)
	assert.Equal(t, "08:00", resolved.WorkTime.StartTime)

	sunday := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	resolved, err = svc.ResolveDay(ctx, "u-1", sunday)
	require.NoError(t, err)
	assert.Equal(t, schedule.DayOff, resolved.Kind)
	assert.Equal(t, "ws-1", resolved.WorkScheduleID)

	beforeAssignment := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	resolved, err = svc.ResolveDay(ctx, "u-1", beforeAssignment)
	require.NoError(t, err)
	assert.Equal(t, schedule.DayNoSchedule, resolved.Kind)
}

func TestSessionService_SessionFor(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(weekdayRepo("08:00", "17:00"), 2*time.Hour)

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	session, err := svc.SessionFor(ctx, "u-1", monday)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), session.Start)
	assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC), session.End)

	sunday := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	session, err = svc.SessionFor(ctx, "u-1", sunday)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_LocateActive_DayShift(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(weekdayRepo("08:00", "17:00"), 2*time.Hour)

	// Tuesday 09:00 lands inside Tuesday's session.
	now := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	session, err := svc.LocateActive(ctx, "u-1", now)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), session.Date)
}

func TestSessionService_LocateActive_OvernightTieBreak(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(weekdayRepo("22:00", "06:00"), 2*time.Hour)

	// Tuesday 05:00: Monday's overnight session is still open, even
	// though Tuesday also has a valid session later. Yesterday wins.
	now := time.Date(2025, 3, 11, 5, 0, 0, 0, time.UTC)
	session, err := svc.LocateActive(ctx, "u-1", now)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), session.Date)

	// Tuesday 08:00 is exactly Monday's window end (06:00 + 2h); the
	// window is inclusive, so Monday still wins.
	now = time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)
	session, err = svc.LocateActive(ctx, "u-1", now)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), session.Date)

	// Tuesday 09:00: past Monday's window, so the tap belongs to
	// Tuesday's session even though its scan window has not opened yet.
	now = time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	session, err = svc.LocateActive(ctx, "u-1", now)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), session.Date)
}

func TestSessionService_LocateActive_NoSession(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(&fakeScheduleRepo{}, 2*time.Hour)

	session, err := svc.LocateActive(ctx, "u-1", time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, session)
}
