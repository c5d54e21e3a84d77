package attendance

import "errors"

// FaultCode identifies an expected, user-facing tap rejection.
type FaultCode string

const (
	FaultDeviceNotRegistered FaultCode = "DEVICE_NOT_REGISTERED"
	FaultCardNotRegistered   FaultCode = "CARD_NOT_REGISTERED"
	FaultHoliday             FaultCode = "HOLIDAY"
	FaultOnLeave             FaultCode = "ON_LEAVE"
	FaultNoSchedule          FaultCode = "NO_SCHEDULE"
	FaultScheduledDayOff     FaultCode = "SCHEDULED_DAY_OFF"
	FaultTooEarly            FaultCode = "TOO_EARLY"
	FaultSessionEnded        FaultCode = "SESSION_ENDED"
	FaultAlreadyClockedOut   FaultCode = "ALREADY_CLOCKED_OUT"
	FaultTooEarlyForClockout FaultCode = "TOO_EARLY_FOR_CLOCKOUT"
)

// TapFault is a business rejection of a tap. It carries a short title
// and a human message for the device display. Faults are normal
// responses, never logged as system errors.
type TapFault struct {
	Code    FaultCode
	Title   string
	Message string
}

func (f *TapFault) Error() string {
	return string(f.Code) + ": " + f.Message
}

// NewTapFault builds a typed tap rejection.
func NewTapFault(code FaultCode, title, message string) *TapFault {
	return &TapFault{Code: code, Title: title, Message: message}
}

// AsTapFault unwraps a TapFault from an error chain.
func AsTapFault(err error) (*TapFault, bool) {
	var fault *TapFault
	if errors.As(err, &fault) {
		return fault, true
	}
	return nil, false
}

// General errors
var (
	ErrRawAttendanceExists   = errors.New("raw attendance already exists for this session")
	ErrRawAttendanceNotFound = errors.New("raw attendance record not found")
)
