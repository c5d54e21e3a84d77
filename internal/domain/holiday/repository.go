package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines read access to the holiday calendar.
type HolidayRepository interface {
	// GetByDate retrieves the holiday declared on date, or nil.
	GetByDate(ctx context.Context, date time.Time) (*Holiday, error)
}
