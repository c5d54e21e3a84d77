package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/presensia/attendance-backend-go/internal/domain/attendance"
	"github.com/presensia/attendance-backend-go/internal/domain/holiday"
	"github.com/presensia/attendance-backend-go/internal/domain/leave"
	"github.com/presensia/attendance-backend-go/internal/domain/schedule"
	"github.com/presensia/attendance-backend-go/internal/domain/user"
)

type ReconcileServiceImpl struct {
	user.UserRepository
	sessions schedule.SessionService
	holiday.HolidayRepository
	leave.LeaveRepository
	attendance.RawAttendanceRepository
	attendance.AttendanceRepository
	workers int
	logger  *slog.Logger
}

// Reconcile implements attendance.ReconcileService. Users are processed
// concurrently; one user's failure never blocks the rest of the batch.
func (s *ReconcileServiceImpl) Reconcile(ctx context.Context, date time.Time) (attendance.ReconcileSummary, error) {
	date = schedule.TruncateToDate(date)

	hol, err := s.HolidayRepository.GetByDate(ctx, date)
	if err != nil {
		return attendance.ReconcileSummary{}, fmt.Errorf("failed to check holiday: %w", err)
	}

	users, err := s.UserRepository.ListActiveCardHolders(ctx)
	if err != nil {
		return attendance.ReconcileSummary{}, fmt.Errorf("failed to list card holders: %w", err)
	}

	summary := attendance.ReconcileSummary{Date: date.Format("2006-01-02")}

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, u := range users {
		u := u
		g.Go(func() error {
			processed, err := s.reconcileUser(gCtx, u, date, hol != nil)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				summary.Failed++
				s.logger.Error("failed to reconcile attendance",
					slog.String("user_id", u.ID),
					slog.String("date", summary.Date),
					slog.Any("error", err),
				)
			case processed:
				summary.Processed++
			default:
				summary.Skipped++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return attendance.ReconcileSummary{}, fmt.Errorf("failed to reconcile batch: %w", err)
	}

	return summary, nil
}

// reconcileUser finalizes one user's record for date. Returns false when
// the user has no schedule assignment covering the date, in which case
// no record is written at all.
func (s *ReconcileServiceImpl) reconcileUser(ctx context.Context, u user.User, date time.Time, isHoliday bool) (bool, error) {
	resolved, err := s.sessions.ResolveDay(ctx, u.ID, date)
	if err != nil {
		return false, err
	}
	if resolved.Kind == schedule.DayNoSchedule {
		return false, nil
	}

	raw, err := s.RawAttendanceRepository.GetByUserAndDate(ctx, u.ID, date)
	if err != nil {
		return false, err
	}

	att := attendance.Attendance{
		UserID:         u.ID,
		Date:           date,
		WorkScheduleID: resolved.WorkScheduleID,
		Notes:          "Processed automatically.",
	}

	if isHoliday || resolved.Kind == schedule.DayOff {
		att.Status = attendance.StatusHoliday
	} else {
		att.Status = attendance.StatusAbsent
	}

	// Punches are preserved even on holidays and days off; lateness only
	// matters on a working day that is not a holiday.
	if raw != nil {
		att.ClockIn = &raw.ClockIn
		att.ClockOut = raw.ClockOut

		if att.Status == attendance.StatusAbsent {
			session, err := schedule.BuildSession(resolved.WorkScheduleID, *resolved.WorkTime, date, 0)
			if err != nil {
				return false, err
			}
			att.LateMinutes = attendance.LateMinutes(session.Start, raw.ClockIn)
			att.Status = attendance.DeriveStatus(att.LateMinutes, resolved.WorkTime.LateToleranceMinutes)
		}
	}

	// A working day with no punches falls back to approved leave before
	// being finalized as absent.
	if att.Status == attendance.StatusAbsent {
		lv, err := s.LeaveRepository.GetApprovedForDate(ctx, u.ID, date)
		if err != nil {
			return false, err
		}
		if lv != nil {
			att.Status = leaveStatus(lv)
		}
	}

	if _, err := s.AttendanceRepository.Upsert(ctx, att); err != nil {
		return false, err
	}

	return true, nil
}

func leaveStatus(lv *leave.LeaveRequest) attendance.Status {
	if lv.LeaveType == nil {
		return attendance.StatusPermit
	}
	switch lv.LeaveType.ResolveCategory() {
	case leave.CategoryLeave:
		return attendance.StatusLeave
	case leave.CategorySick:
		return attendance.StatusSick
	default:
		return attendance.StatusPermit
	}
}

func NewReconcileService(
	userRepo user.UserRepository,
	sessions schedule.SessionService,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRepository,
	rawAttendanceRepo attendance.RawAttendanceRepository,
	attendanceRepo attendance.AttendanceRepository,
	workers int,
	logger *slog.Logger,
) attendance.ReconcileService {
	if workers <= 0 {
		workers = 1
	}
	return &ReconcileServiceImpl{
		UserRepository:          userRepo,
		sessions:                sessions,
		HolidayRepository:       holidayRepo,
		LeaveRepository:         leaveRepo,
		RawAttendanceRepository: rawAttendanceRepo,
		AttendanceRepository:    attendanceRepo,
		workers:                 workers,
		logger:                  logger,
	}
}
