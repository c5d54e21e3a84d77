package schedule

import (
	"context"
	"time"
)

// ScheduleRepository defines read access to the externally managed
// schedule master data.
type ScheduleRepository interface {
	// GetAssignmentForDate retrieves the single assignment covering date
	// for the user, or nil when none exists.
	GetAssignmentForDate(ctx context.Context, userID string, date time.Time) (*ScheduleAssignment, error)

	// GetDayWorkTime retrieves the work time bound to the schedule's day
	// of week (1=Monday .. 7=Sunday). Returns nil when the day has no
	// entry or its work time reference is null, both meaning a day off.
	GetDayWorkTime(ctx context.Context, workScheduleID string, dayOfWeek int) (*WorkTime, error)

	// HasAnyAssignment reports whether the user has ever been assigned a
	// schedule. Used to distinguish "no schedule" from "day off".
	HasAnyAssignment(ctx context.Context, userID string) (bool, error)
}
