package leave

import (
	"context"
	"time"
)

// LeaveRepository defines read access to the leave store.
type LeaveRepository interface {
	// GetApprovedForDate retrieves the approved leave request covering
	// date for the user, with its leave type loaded, or nil.
	GetApprovedForDate(ctx context.Context, userID string, date time.Time) (*LeaveRequest, error)
}
