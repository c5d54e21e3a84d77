package tap

import (
	"context"
	"fmt"
	"time"

	"github.com/presensia/attendance-backend-go/internal/domain/attendance"
	"github.com/presensia/attendance-backend-go/internal/domain/holiday"
	"github.com/presensia/attendance-backend-go/internal/domain/leave"
	"github.com/presensia/attendance-backend-go/internal/domain/rfid"
	"github.com/presensia/attendance-backend-go/internal/domain/schedule"
	"github.com/presensia/attendance-backend-go/internal/domain/user"
	"github.com/presensia/attendance-backend-go/internal/pkg/sse"
)

// MonitorTopic is the SSE topic tap outcomes are broadcast on.
const MonitorTopic = "tap-monitor"

type TapServiceImpl struct {
	rfid.DeviceRepository
	rfid.CardRepository
	rfid.ScanRepository
	user.UserRepository
	sessions schedule.SessionService
	holiday.HolidayRepository
	leave.LeaveRepository
	attendance.RawAttendanceRepository
	hub *sse.Hub
	// now yields the tap instant in the attendance timezone; session
	// dates and punch keys derive from its calendar date.
	now func() time.Time
}

// ProcessTap implements attendance.TapService.
func (s *TapServiceImpl) ProcessTap(ctx context.Context, req attendance.TapRequest) (attendance.TapResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.TapResult{}, err
	}
	now := s.now()

	// Every tap is audited, valid or not, before any validation can
	// fail. The user reference is back-filled once the card resolves.
	scan, err := s.ScanRepository.Create(ctx, rfid.Scan{
		DeviceUID: req.DeviceUID,
		CardUID:   req.CardUID,
	})
	if err != nil {
		return attendance.TapResult{}, fmt.Errorf("failed to record rfid scan: %w", err)
	}

	result, err := s.processTap(ctx, scan, req, now)
	if err != nil {
		if fault, ok := attendance.AsTapFault(err); ok {
			s.publish(attendance.TapResult{
				Success: false,
				Title:   fault.Title,
				Message: fault.Message,
			})
		}
		return attendance.TapResult{}, err
	}

	s.publish(result)
	return result, nil
}

func (s *TapServiceImpl) processTap(ctx context.Context, scan rfid.Scan, req attendance.TapRequest, now time.Time) (attendance.TapResult, error) {
	device, err := s.DeviceRepository.GetByUID(ctx, req.DeviceUID)
	if err != nil {
		return attendance.TapResult{}, fmt.Errorf("failed to look up device: %w", err)
	}
	if device == nil {
		return attendance.TapResult{}, attendance.NewTapFault(
			attendance.FaultDeviceNotRegistered,
			"DEVICE NOT REGISTERED",
			"This device is not registered.",
		)
	}
	if !device.IsActive {
		return attendance.TapResult{}, attendance.NewTapFault(
			attendance.FaultDeviceNotRegistered,
			"DEVICE DISABLED",
			"This device has been disabled.",
		)
	}

	card, err := s.CardRepository.GetByUID(ctx, req.CardUID)
	if err != nil {
		return attendance.TapResult{}, fmt.Errorf("failed to look up card: %w", err)
	}
	if card == nil {
		return attendance.TapResult{}, attendance.NewTapFault(
			attendance.FaultCardNotRegistered,
			"CARD NOT REGISTERED",
			fmt.Sprintf("Register this card through the website.\nUID: %s", req.CardUID),
		)
	}

	usr, err := s.UserRepository.GetByID(ctx, card.UserID)
	if err != nil {
		return attendance.TapResult{}, fmt.Errorf("failed to look up card holder: %w", err)
	}
	if usr == nil {
		return attendance.TapResult{}, attendance.NewTapFault(
			attendance.FaultCardNotRegistered,
			"CARD NOT REGISTERED",
			fmt.Sprintf("This card is not linked to a user.\nUID: %s", req.CardUID),
		)
	}

	if err := s.ScanRepository.SetUser(ctx, scan.ID, usr.ID); err != nil {
		return attendance.TapResult{}, fmt.Errorf("failed to set scan user: %w", err)
	}

	session, err := s.sessions.LocateActive(ctx, usr.ID, now)
	if err != nil {
		return attendance.TapResult{}, fmt.Errorf("failed to locate active session: %w", err)
	}
	if session == nil {
		return attendance.TapResult{}, s.noActiveSessionFault(ctx, usr.ID, now)
	}

	// Holiday overrides schedule; approved leave overrides a session.
	// Both are checked against the session's logical start date.
	hol, err := s.HolidayRepository.GetByDate(ctx, session.Date)
	if err != nil {
		return attendance.TapResult{}, fmt.Errorf("failed to check holiday: %w", err)
	}
	if hol != nil {
		return attendance.TapResult{}, attendance.NewTapFault(
			attendance.FaultHoliday,
			"NATIONAL HOLIDAY",
			fmt.Sprintf("%s is a national holiday: %s.", session.Date.Format("2006-01-02"), hol.Description),
		)
	}

	lv, err := s.LeaveRepository.GetApprovedForDate(ctx, usr.ID, session.Date)
	if err != nil {
		return attendance.TapResult{}, fmt.Errorf("failed to check leave: %w", err)
	}
	if lv != nil {
		leaveName := "approved leave"
		if lv.LeaveType != nil {
			leaveName = lv.LeaveType.Name
		}
		return attendance.TapResult{}, attendance.NewTapFault(
			attendance.FaultOnLeave,
			"ON LEAVE",
			fmt.Sprintf("You are on approved leave today: %s.", leaveName),
		)
	}

	// The read-decide-write below is serialized per (user, session date)
	// so two near-simultaneous taps cannot both clock in.
	var result attendance.TapResult
	err = s.RawAttendanceRepository.WithSessionLock(ctx, usr.ID, session.Date, func(lockCtx context.Context) error {
		existing, err := s.RawAttendanceRepository.GetByUserAndDate(lockCtx, usr.ID, session.Date)
		if err != nil {
			return fmt.Errorf("failed to get raw attendance: %w", err)
		}

		switch {
		case existing == nil:
			result, err = s.clockIn(lockCtx, usr, session, now)
		case existing.ClockOut != nil:
			err = attendance.NewTapFault(
				attendance.FaultAlreadyClockedOut,
				"ALREADY CLOCKED OUT",
				fmt.Sprintf("You already clocked out at %s.", existing.ClockOut.Format("15:04")),
			)
		default:
			result, err = s.clockOut(lockCtx, usr, existing, session, now)
		}
		return err
	})
	if err != nil {
		return attendance.TapResult{}, err
	}

	return result, nil
}

// noActiveSessionFault explains why no session is open right now:
// a declared holiday, a user with no assignment at all, or a scheduled
// day off. No punch state is touched on this path.
func (s *TapServiceImpl) noActiveSessionFault(ctx context.Context, userID string, now time.Time) error {
	hol, err := s.HolidayRepository.GetByDate(ctx, schedule.TruncateToDate(now))
	if err != nil {
		return fmt.Errorf("failed to check holiday: %w", err)
	}
	if hol != nil {
		return attendance.NewTapFault(
			attendance.FaultHoliday,
			"NATIONAL HOLIDAY",
			fmt.Sprintf("Today is a national holiday: %s.", hol.Description),
		)
	}

	hasSchedule, err := s.sessions.HasAnyAssignment(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check schedule assignments: %w", err)
	}
	if !hasSchedule {
		return attendance.NewTapFault(
			attendance.FaultNoSchedule,
			"NO SCHEDULE",
			"You have no work schedule assignment yet.",
		)
	}

	return attendance.NewTapFault(
		attendance.FaultScheduledDayOff,
		"DAY OFF",
		"Today is your scheduled day off.",
	)
}

func (s *TapServiceImpl) clockIn(ctx context.Context, usr *user.User, session *schedule.WorkSession, now time.Time) (attendance.TapResult, error) {
	if now.Before(session.WindowStart) {
		return attendance.TapResult{}, attendance.NewTapFault(
			attendance.FaultTooEarly,
			"TOO EARLY",
			fmt.Sprintf("Your shift starts at %s.\nYou can scan in from %s.",
				session.Start.Format("15:04"), session.WindowStart.Format("15:04")),
		)
	}

	// A session whose scheduled end has passed without a clock-in is a
	// missed session, not a late clock-in.
	if !now.Before(session.End) {
		return attendance.TapResult{}, attendance.NewTapFault(
			attendance.FaultSessionEnded,
			"SESSION ENDED",
			fmt.Sprintf("Your session ended at %s.\nThis day counts as missed.", session.End.Format("15:04")),
		)
	}

	if _, err := s.RawAttendanceRepository.Create(ctx, attendance.RawAttendance{
		UserID:  usr.ID,
		Date:    session.Date,
		ClockIn: now,
	}); err != nil {
		return attendance.TapResult{}, fmt.Errorf("failed to create raw attendance: %w", err)
	}

	return attendance.TapResult{
		Success:     true,
		Title:       "CLOCK IN",
		Message:     fmt.Sprintf("Welcome, %s.\nClocked in at %s.", usr.Name, now.Format("15:04")),
		Action:      attendance.TapActionClockIn,
		UserName:    usr.Name,
		SessionDate: session.Date.Format("2006-01-02"),
		TappedAt:    &now,
		LateMinutes: attendance.LateMinutes(session.Start, now),
	}, nil
}

func (s *TapServiceImpl) clockOut(ctx context.Context, usr *user.User, raw *attendance.RawAttendance, session *schedule.WorkSession, now time.Time) (attendance.TapResult, error) {
	if now.Before(session.End) {
		return attendance.TapResult{}, attendance.NewTapFault(
			attendance.FaultTooEarlyForClockout,
			"NOT TIME TO LEAVE",
			fmt.Sprintf("Your shift ends at %s.", session.End.Format("15:04")),
		)
	}

	if err := s.RawAttendanceRepository.SetClockOut(ctx, raw.ID, now); err != nil {
		return attendance.TapResult{}, fmt.Errorf("failed to set clock out: %w", err)
	}

	return attendance.TapResult{
		Success:     true,
		Title:       "CLOCK OUT",
		Message:     fmt.Sprintf("Thank you, %s.\nClocked out at %s.", usr.Name, now.Format("15:04")),
		Action:      attendance.TapActionClockOut,
		UserName:    usr.Name,
		SessionDate: session.Date.Format("2006-01-02"),
		TappedAt:    &now,
	}, nil
}

func (s *TapServiceImpl) publish(result attendance.TapResult) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(MonitorTopic, sse.Event{
		Topic: MonitorTopic,
		Event: "tap",
		Data:  result,
	})
}

func NewTapService(
	deviceRepo rfid.DeviceRepository,
	cardRepo rfid.CardRepository,
	scanRepo rfid.ScanRepository,
	userRepo user.UserRepository,
	sessions schedule.SessionService,
	holidayRepo holiday.HolidayRepository,
	leaveRepo leave.LeaveRepository,
	rawAttendanceRepo attendance.RawAttendanceRepository,
	hub *sse.Hub,
	loc *time.Location,
) attendance.TapService {
	return &TapServiceImpl{
		DeviceRepository:        deviceRepo,
		CardRepository:          cardRepo,
		ScanRepository:          scanRepo,
		UserRepository:          userRepo,
		sessions:                sessions,
		HolidayRepository:       holidayRepo,
		LeaveRepository:         leaveRepo,
		RawAttendanceRepository: rawAttendanceRepo,
		hub:                     hub,
		now:                     func() time.Time { return time.Now().In(loc) },
	}
}
