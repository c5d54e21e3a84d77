package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/presensia/attendance-backend-go/internal/domain/schedule"
)

type SessionServiceImpl struct {
	schedule.ScheduleRepository
	scanWindow time.Duration
}

// ResolveDay implements schedule.SessionService.
func (s *SessionServiceImpl) ResolveDay(ctx context.Context, userID string, date time.Time) (schedule.ResolvedDay, error) {
	assignment, err := s.ScheduleRepository.GetAssignmentForDate(ctx, userID, date)
	if err != nil {
		return schedule.ResolvedDay{}, fmt.Errorf("failed to resolve assignment: %w", err)
	}
	if assignment == nil {
		return schedule.ResolvedDay{Kind: schedule.DayNoSchedule}, nil
	}

	workTime, err := s.ScheduleRepository.GetDayWorkTime(ctx, assignment.WorkScheduleID, schedule.ISOWeekday(date))
	if err != nil {
		return schedule.ResolvedDay{}, fmt.Errorf("failed to resolve day work time: %w", err)
	}
	if workTime == nil {
		return schedule.ResolvedDay{
			Kind:           schedule.DayOff,
			WorkScheduleID: assignment.WorkScheduleID,
		}, nil
	}

	return schedule.ResolvedDay{
		Kind:           schedule.DayWorking,
		WorkScheduleID: assignment.WorkScheduleID,
		WorkTime:       workTime,
	}, nil
}

// SessionFor implements schedule.SessionService.
func (s *SessionServiceImpl) SessionFor(ctx context.Context, userID string, date time.Time) (*schedule.WorkSession, error) {
	resolved, err := s.ResolveDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if resolved.Kind != schedule.DayWorking {
		return nil, nil
	}

	session, err := schedule.BuildSession(resolved.WorkScheduleID, *resolved.WorkTime, date, s.scanWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to build session: %w", err)
	}
	return &session, nil
}

// LocateActive implements schedule.SessionService. A single wall-clock
// instant must map to exactly one session even when two calendar days
// both have valid windows: yesterday's session wins while now is still
// inside [start, window end], which keeps an overnight shift open for
// checkout even after today's session has begun.
func (s *SessionServiceImpl) LocateActive(ctx context.Context, userID string, now time.Time) (*schedule.WorkSession, error) {
	yesterday, err := s.SessionFor(ctx, userID, now.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	if yesterday != nil && !now.Before(yesterday.Start) && !now.After(yesterday.WindowEnd) {
		return yesterday, nil
	}

	today, err := s.SessionFor(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if today != nil {
		return today, nil
	}

	return nil, nil
}

// HasAnyAssignment implements schedule.SessionService.
func (s *SessionServiceImpl) HasAnyAssignment(ctx context.Context, userID string) (bool, error) {
	return s.ScheduleRepository.HasAnyAssignment(ctx, userID)
}

func NewSessionService(scheduleRepo schedule.ScheduleRepository, scanWindow time.Duration) schedule.SessionService {
	return &SessionServiceImpl{
		ScheduleRepository: scheduleRepo,
		scanWindow:         scanWindow,
	}
}
