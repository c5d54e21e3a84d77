package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensia/attendance-backend-go/internal/domain/attendance"
)

type stubTapService struct {
	result attendance.TapResult
	err    error
}

func (s *stubTapService) ProcessTap(ctx context.Context, req attendance.TapRequest) (attendance.TapResult, error) {
	return s.result, s.err
}

func doTap(t *testing.T, svc attendance.TapService, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewTapHandler(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tap", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Tap(rec, req)
	return rec
}

func decodeDisplay(t *testing.T, rec *httptest.ResponseRecorder) attendance.TapResult {
	t.Helper()
	var result attendance.TapResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	return result
}

func TestTapHandler_Success(t *testing.T) {
	svc := &stubTapService{result: attendance.TapResult{
		Success: true,
		Title:   "CLOCK IN",
		Message: "Welcome, Andi.",
		Action:  attendance.TapActionClockIn,
	}}

	rec := doTap(t, svc, []byte(`{"device_uid":"dev-1","card_uid":"card-1"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	result := decodeDisplay(t, rec)
	assert.True(t, result.Success)
	assert.Equal(t, "CLOCK IN", result.Title)
}

func TestTapHandler_BusinessFaultIsHTTP200(t *testing.T) {
	svc := &stubTapService{err: attendance.NewTapFault(
		attendance.FaultTooEarly,
		"TOO EARLY",
		"Your shift starts at 09:00.",
	)}

	rec := doTap(t, svc, []byte(`{"device_uid":"dev-1","card_uid":"card-1"}`))

	// Rejections are normal outcomes for the reader display, not errors.
	assert.Equal(t, http.StatusOK, rec.Code)
	result := decodeDisplay(t, rec)
	assert.False(t, result.Success)
	assert.Equal(t, "TOO EARLY", result.Title)
	assert.Equal(t, "Your shift starts at 09:00.", result.Message)
}

func TestTapHandler_SystemErrorIsHTTP500(t *testing.T) {
	svc := &stubTapService{err: errors.New("connection refused")}

	rec := doTap(t, svc, []byte(`{"device_uid":"dev-1","card_uid":"card-1"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	result := decodeDisplay(t, rec)
	assert.False(t, result.Success)
	assert.Equal(t, "SERVER ERROR", result.Title)
	// Internal detail never leaks to the display.
	assert.NotContains(t, result.Message, "connection refused")
}

func TestTapHandler_MalformedBody(t *testing.T) {
	svc := &stubTapService{}

	rec := doTap(t, svc, []byte(`{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	result := decodeDisplay(t, rec)
	assert.False(t, result.Success)
}
