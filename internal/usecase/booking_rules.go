package usecase

import (
	"time"

	"go-counseling-care/internal/domain/entity"
	"go-counseling-care/internal/domain/repository"

	"gorm.io/gorm"
)

// BookingRequest is the immutable input to the booking rule chain.
type BookingRequest struct {
	Patient   *entity.PatientProfile
	Counselor *entity.User
	Date      time.Time
	Time      string
}

// bookingRule checks one business rule against a booking request. Rules only
// read; the db handle is the transaction the booking runs in, so conflict
// checks see a consistent snapshot with the final insert.
type bookingRule interface {
	Validate(tx *gorm.DB, req *BookingRequest) error
}

// counselorEligibilityRule requires the target user to be an active counselor.
type counselorEligibilityRule struct{}

func (r *counselorEligibilityRule) Validate(tx *gorm.DB, req *BookingRequest) error {
	if req == nil || req.Counselor == nil {
		return ErrCounselorNotFound
	}
	if !req.Counselor.IsCounselor() {
		return ErrNotACounselor
	}
	if !req.Counselor.IsActive {
		return ErrCounselorDeactivated
	}
	return nil
}

// counselorAvailabilityRule requires the requested time to fall inside at
// least one declared weekly window for that weekday. The probe is a single
// instant; session duration is not modeled, so a booking just before a
// window's end is accepted.
type counselorAvailabilityRule struct {
	availabilityRepo repository.AvailabilityRepository
}

func (r *counselorAvailabilityRule) Validate(tx *gorm.DB, req *BookingRequest) error {
	if req == nil || req.Date.IsZero() || req.Time == "" {
		return ErrBookingIncomplete
	}

	requested, err := parseTimeOfDay(req.Time)
	if err != nil {
		return ErrInvalidTimeFormat
	}

	// time.Weekday already follows the 0=Sunday..6=Saturday convention.
	dayOfWeek := int(req.Date.Weekday())

	slots, err := r.availabilityRepo.FindByCounselorAndDay(tx, req.Counselor.ID, dayOfWeek)
	if err != nil {
		return err
	}

	for _, slot := range slots {
		start, err := parseTimeOfDay(slot.StartTime)
		if err != nil {
			continue
		}
		end, err := parseTimeOfDay(slot.EndTime)
		if err != nil {
			continue
		}
		if withinWindow(requested, start, end) {
			return nil
		}
	}

	return ErrCounselorUnavailable
}

// appointmentConflictRule rejects the booking when a non-canceled appointment
// already occupies the exact (counselor, date, time) tuple. Conflict is keyed
// on instant equality, not overlap: adjacent bookings never conflict.
type appointmentConflictRule struct {
	appointmentRepo repository.AppointmentRepository
}

func (r *appointmentConflictRule) Validate(tx *gorm.DB, req *BookingRequest) error {
	if req == nil || req.Date.IsZero() || req.Time == "" {
		return ErrBookingIncomplete
	}

	taken, err := r.appointmentRepo.ExistsForSlot(tx, req.Counselor.ID, req.Date, req.Time)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlotTaken
	}
	return nil
}
