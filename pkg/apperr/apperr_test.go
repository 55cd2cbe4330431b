package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstructorsSetKind(t *testing.T) {
	tests := []struct {
		err  *Error
		kind Kind
	}{
		{Invalid("bad input"), KindInvalid},
		{Unauthorized("no token"), KindUnauthorized},
		{Forbidden("not yours"), KindForbidden},
		{NotFound("missing"), KindNotFound},
		{Conflict("taken"), KindConflict},
	}

	for _, tt := range tests {
		if tt.err.Kind != tt.kind {
			t.Errorf("kind = %v, want %v", tt.err.Kind, tt.kind)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := Conflict("Time slot already booked")
	if err.Error() != "Time slot already booked" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	base := NotFound("Appointment not found")
	wrapped := fmt.Errorf("handling request: %w", base)

	var appErr *Error
	if !errors.As(wrapped, &appErr) {
		t.Fatal("errors.As failed on wrapped error")
	}
	if appErr.Kind != KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", appErr.Kind)
	}
}
