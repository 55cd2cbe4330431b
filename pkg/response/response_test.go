package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-counseling-care/pkg/apperr"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		kind apperr.Kind
		want int
	}{
		{apperr.KindInvalid, http.StatusBadRequest},
		{apperr.KindUnauthorized, http.StatusUnauthorized},
		{apperr.KindForbidden, http.StatusForbidden},
		{apperr.KindNotFound, http.StatusNotFound},
		{apperr.KindConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		if got := StatusCode(tt.kind); got != tt.want {
			t.Errorf("StatusCode(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestAppErrorMapsTypedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	AppError(rec, apperr.Conflict("Time slot already booked"), "Failed to book")

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
	if body.Message != "Time slot already booked" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestAppErrorHidesInfrastructureErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	AppError(rec, errors.New("dial tcp: connection refused"), "Failed to book")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Failed to book" {
		t.Errorf("message = %q, internal detail must not leak", body.Message)
	}
}
