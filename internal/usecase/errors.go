package usecase

import (
	"errors"
	"strings"

	"go-counseling-care/pkg/apperr"

	"github.com/jackc/pgx/v5/pgconn"
)

// Typed business failures shared across usecases. Each rule or operation
// raises exactly one of these; the delivery layer maps kinds to HTTP statuses.
var (
	// Booking pipeline
	ErrPatientProfileNotFound = apperr.Invalid("Patient profile not found")
	ErrCounselorNotFound      = apperr.NotFound("Counselor not found")
	ErrBookingIncomplete      = apperr.Invalid("counselorId, appointmentDate and appointmentTime are required")
	ErrNotACounselor          = apperr.Invalid("Selected user is not a counselor")
	ErrCounselorDeactivated   = apperr.Invalid("Counselor account is deactivated")
	ErrCounselorUnavailable   = apperr.Invalid("Counselor not available at selected time")
	ErrSlotTaken              = apperr.Conflict("Time slot already booked")

	// Appointments
	ErrAppointmentNotFound = apperr.NotFound("Appointment not found")
	ErrAccessDenied        = apperr.Forbidden("Access denied")
	ErrInvalidStatus       = apperr.Invalid("Invalid status")

	// Availability
	ErrInvalidDayOfWeek = apperr.Invalid("dayOfWeek must be 0..6")
	ErrInvalidTimeRange = apperr.Invalid("Invalid time range")

	// Users and auth
	ErrUserNotFound             = apperr.NotFound("User not found")
	ErrInvalidRole              = apperr.Invalid("Invalid role")
	ErrUserNotCounselor         = apperr.Invalid("User is not a counselor")
	ErrEmailAlreadyExists       = apperr.Conflict("Email already registered")
	ErrInvalidCredentials       = apperr.Unauthorized("Invalid email or password")
	ErrAccountDeactivated       = apperr.Forbidden("Account is deactivated")
	ErrInvalidToken             = apperr.Unauthorized("Invalid or expired token")
	ErrTokenRevoked             = apperr.Unauthorized("Token has been revoked")
	ErrRegistrationRestricted   = apperr.Forbidden("Only patients can register. Counselors are created by admin.")
	ErrAssignedCounselorInvalid = apperr.Invalid("Assigned counselor must have role counselor")

	// Mood tracking
	ErrMoodRatingOutOfRange = apperr.Invalid("Mood rating must be between 1 and 10")

	// Formats
	ErrInvalidDateFormat = apperr.Invalid("Invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = apperr.Invalid("Invalid time format, use HH:MM")
)

// isUniqueViolation checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
