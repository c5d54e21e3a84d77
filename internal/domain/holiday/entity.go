package holiday

import "time"

// Holiday is a declared national holiday. Unique per date; overrides
// any scheduled work time for all users.
type Holiday struct {
	ID          string
	Date        time.Time
	Description string
}
