package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/presensia/attendance-backend-go/internal/domain/attendance"
	"github.com/presensia/attendance-backend-go/internal/handler/http/response"
	"github.com/presensia/attendance-backend-go/internal/pkg/validator"
)

type TapHandler interface {
	Tap(w http.ResponseWriter, r *http.Request)
}

type tapHandlerImpl struct {
	tapService attendance.TapService
}

func NewTapHandler(tapService attendance.TapService) TapHandler {
	return &tapHandlerImpl{
		tapService: tapService,
	}
}

// Tap implements TapHandler. Reader firmware only understands the
// display shape {success, title, message}, so every outcome, business
// rejections included, is written in that shape. Rejections go out with
// HTTP 200; only system failures get a 5xx.
func (h *tapHandlerImpl) Tap(w http.ResponseWriter, r *http.Request) {
	var req attendance.TapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteJSON(w, http.StatusBadRequest, attendance.TapResult{
			Success: false,
			Title:   "BAD REQUEST",
			Message: "Invalid request format.",
		})
		return
	}

	result, err := h.tapService.ProcessTap(r.Context(), req)
	if err != nil {
		if fault, ok := attendance.AsTapFault(err); ok {
			response.WriteJSON(w, http.StatusOK, attendance.TapResult{
				Success: false,
				Title:   fault.Title,
				Message: fault.Message,
			})
			return
		}

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.WriteJSON(w, http.StatusUnprocessableEntity, attendance.TapResult{
				Success: false,
				Title:   "BAD REQUEST",
				Message: validationErrs.Error(),
			})
			return
		}

		slog.Error("Failed to process tap", "error", err)
		response.WriteJSON(w, http.StatusInternalServerError, attendance.TapResult{
			Success: false,
			Title:   "SERVER ERROR",
			Message: "Something went wrong. Try again.",
		})
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}
