package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/presensia/attendance-backend-go/internal/domain/attendance"
	"github.com/presensia/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	reconcileService attendance.ReconcileService
	location         *time.Location
}

func NewAttendanceHandler(reconcileService attendance.ReconcileService, location *time.Location) AttendanceHandler {
	return &attendanceHandlerImpl{
		reconcileService: reconcileService,
		location:         location,
	}
}

// Process implements AttendanceHandler. Triggers the batch run for the
// requested date; without a body or date the batch finalizes yesterday,
// mirroring what the nightly job does.
func (h *attendanceHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req attendance.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date := time.Now().In(h.location).AddDate(0, 0, -1)
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *req.Date, h.location)
		if err != nil {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	summary, err := h.reconcileService.Reconcile(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance processed", summary)
}
