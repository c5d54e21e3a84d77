package attendance

import (
	"context"
	"time"
)

// RawAttendanceRepository persists the live punch ledger.
type RawAttendanceRepository interface {
	// WithSessionLock runs fn while holding a per-(user, date) exclusive
	// lock, serializing the read-decide-write sequence of concurrent
	// taps for the same session. The lock is released when fn returns.
	WithSessionLock(ctx context.Context, userID string, date time.Time, fn func(ctx context.Context) error) error

	// GetByUserAndDate retrieves the punch row for the session starting
	// on date, or nil.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*RawAttendance, error)

	// Create inserts the first clock-in of a session. A duplicate
	// (user, date) insert fails with ErrRawAttendanceExists.
	Create(ctx context.Context, raw RawAttendance) (RawAttendance, error)

	// SetClockOut records the clock-out on an existing row.
	SetClockOut(ctx context.Context, id string, clockOut time.Time) error
}

// AttendanceRepository persists finalized daily records.
type AttendanceRepository interface {
	// Upsert replaces the record keyed by (user, date). Re-running the
	// batch with unchanged inputs yields an identical row.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves a finalized record, or nil.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)
}
