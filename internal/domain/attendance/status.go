package attendance

import "time"

// LateMinutes returns the whole minutes clockIn trails scheduledStart,
// never negative.
func LateMinutes(scheduledStart, clockIn time.Time) int {
	if !clockIn.After(scheduledStart) {
		return 0
	}
	return int(clockIn.Sub(scheduledStart) / time.Minute)
}

// DeriveStatus labels a clocked-in day: Late once the lateness exceeds
// the tolerance, Present otherwise. A clock-in exactly at the tolerance
// boundary is still Present.
func DeriveStatus(lateMinutes, toleranceMinutes int) Status {
	if lateMinutes > toleranceMinutes {
		return StatusLate
	}
	return StatusPresent
}
