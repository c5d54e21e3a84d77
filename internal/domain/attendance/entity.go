package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusSick    Status = "Sick"
	StatusPermit  Status = "Permit"
	StatusLeave   Status = "Leave"
	StatusHoliday Status = "Holiday"
)

// RawAttendance is the live punch ledger: one row per (user, session
// start date), created on the first clock-in and mutated once to add
// the clock-out. Date is the session's logical start date, not
// necessarily the calendar date of the tap.
type RawAttendance struct {
	ID        string
	UserID    string
	Date      time.Time
	ClockIn   time.Time
	ClockOut  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attendance is the finalized daily record derived from raw punches
// plus schedule, holiday and leave context. Upserted by the daily
// batch; an idempotent replace keyed by (user, date).
type Attendance struct {
	ID             string
	UserID         string
	Date           time.Time
	WorkScheduleID string
	ClockIn        *time.Time
	ClockOut       *time.Time
	LateMinutes    int
	Status         Status
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
