package schedule

import "time"

// WorkTime is a named pair of local clock times with a lateness grace
// period. EndTime numerically before StartTime signals an overnight
// shift.
type WorkTime struct {
	ID                   string
	Name                 string
	StartTime            string // "HH:MM"
	EndTime              string // "HH:MM"
	LateToleranceMinutes int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type WorkSchedule struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkScheduleDay maps one ISO weekday (1=Monday .. 7=Sunday) of a
// schedule to a work time. A nil WorkTimeID is a scheduled day off.
type WorkScheduleDay struct {
	ID             string
	WorkScheduleID string
	DayOfWeek      int
	WorkTimeID     *string
}

// ScheduleAssignment binds a user to a work schedule over a date range.
// A nil EndDate means open-ended. Assignments for the same user never
// overlap; the master-data layer enforces that at write time.
type ScheduleAssignment struct {
	ID             string
	UserID         string
	WorkScheduleID string
	StartDate      time.Time
	EndDate        *time.Time
}

// DayKind distinguishes the two flavors of "not working": a user with
// no assignment at all versus an assigned schedule whose day is off.
// Callers must tell them apart because they produce different
// user-facing outcomes.
type DayKind int

const (
	DayNoSchedule DayKind = iota
	DayOff
	DayWorking
)

// ResolvedDay is the Schedule Resolver result for one (user, date).
type ResolvedDay struct {
	Kind           DayKind
	WorkScheduleID string
	WorkTime       *WorkTime
}

// WorkSession is one concrete shift instance, identified by the date it
// starts on even when it ends the next day. WindowStart and WindowEnd
// bound the permitted tap range around the session.
type WorkSession struct {
	WorkScheduleID string
	WorkTime       WorkTime
	Date           time.Time // logical session start date
	Start          time.Time
	End            time.Time
	WindowStart    time.Time
	WindowEnd      time.Time
}
