package attendance

import (
	"time"

	"github.com/presensia/attendance-backend-go/internal/pkg/validator"
)

// TapRequest is the payload sent by reader firmware.
type TapRequest struct {
	DeviceUID string `json:"device_uid"`
	CardUID   string `json:"card_uid"`
}

func (r TapRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.DeviceUID) {
		errs = append(errs, validator.ValidationError{Field: "device_uid", Message: "device_uid is required"})
	}
	if validator.IsEmpty(r.CardUID) {
		errs = append(errs, validator.ValidationError{Field: "card_uid", Message: "card_uid is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TapAction labels what a successful tap did.
type TapAction string

const (
	TapActionClockIn  TapAction = "clock_in"
	TapActionClockOut TapAction = "clock_out"
)

// TapResult is the outcome shown on the reader display.
type TapResult struct {
	Success     bool       `json:"success"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Action      TapAction  `json:"action,omitempty"`
	UserName    string     `json:"user_name,omitempty"`
	SessionDate string     `json:"session_date,omitempty"`
	TappedAt    *time.Time `json:"tapped_at,omitempty"`
	LateMinutes int        `json:"late_minutes,omitempty"`
}

// ReconcileRequest triggers a batch run. Date defaults to yesterday.
type ReconcileRequest struct {
	Date *string `json:"date,omitempty"`
}

func (r ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReconcileSummary reports a batch run.
type ReconcileSummary struct {
	Date      string `json:"date"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}
