package schedule

import (
	"context"
	"time"
)

// SessionService resolves schedules into concrete work sessions.
type SessionService interface {
	// ResolveDay finds the applicable assignment and work time for the
	// user on date. Absence is expressed through ResolvedDay.Kind, never
	// through an error.
	ResolveDay(ctx context.Context, userID string, date time.Time) (ResolvedDay, error)

	// SessionFor builds the work-session window starting on date.
	// Returns nil for non-working days.
	SessionFor(ctx context.Context, userID string, date time.Time) (*WorkSession, error)

	// LocateActive decides which session, yesterday's or today's, is the
	// one open at now. Returns nil when neither applies.
	LocateActive(ctx context.Context, userID string, now time.Time) (*WorkSession, error)

	// HasAnyAssignment reports whether the user has any schedule
	// assignment at all.
	HasAnyAssignment(ctx context.Context, userID string) (bool, error)
}
