package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-counseling-care/internal/domain/entity"
	"go-counseling-care/internal/domain/repository"
	"go-counseling-care/pkg/apperr"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppointmentBookingUsecase decides whether a (counselor, date, time) request
// may become a confirmed appointment and performs the atomic create.
type AppointmentBookingUsecase interface {
	Book(ctx context.Context, patient *entity.PatientProfile, counselor *entity.User, date time.Time, timeOfDay string) (*entity.Appointment, error)
}

type appointmentBookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository

	// rules run in this exact order, failing fast on the first violation:
	// eligibility, availability window, slot conflict.
	rules []bookingRule

	slots *slotLocker

	// runTx executes fn inside a transaction holding an advisory lock on the
	// slot key. Replaceable in tests.
	runTx func(ctx context.Context, key string, fn func(tx *gorm.DB) error) error
}

func NewAppointmentBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
) AppointmentBookingUsecase {
	u := &appointmentBookingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		rules: []bookingRule{
			&counselorEligibilityRule{},
			&counselorAvailabilityRule{availabilityRepo: availabilityRepo},
			&appointmentConflictRule{appointmentRepo: appointmentRepo},
		},
		slots: newSlotLocker(),
	}
	u.runTx = u.runInSlotTx
	return u
}

// Book validates the request against the rule chain and creates the
// appointment in `scheduled` state. The conflict check and the insert execute
// as one atomic unit: a per-slot lock is held across the whole operation, the
// transaction takes a postgres advisory lock on the same key, and the partial
// unique index on appointments turns any remaining race into a Conflict.
func (u *appointmentBookingUsecase) Book(ctx context.Context, patient *entity.PatientProfile, counselor *entity.User, date time.Time, timeOfDay string) (*entity.Appointment, error) {
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}
	if counselor == nil {
		return nil, ErrCounselorNotFound
	}
	if date.IsZero() || timeOfDay == "" {
		return nil, ErrBookingIncomplete
	}

	parsed, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	normalized := parsed.Format("15:04")

	req := &BookingRequest{
		Patient:   patient,
		Counselor: counselor,
		Date:      date,
		Time:      normalized,
	}

	key := slotKey(counselor, date, normalized)
	u.slots.lock(key)
	defer u.slots.unlock(key)

	appointment := &entity.Appointment{
		PatientID:       patient.UserID,
		CounselorID:     counselor.ID,
		AppointmentDate: date,
		AppointmentTime: normalized,
		Status:          entity.AppointmentStatusScheduled,
	}

	err = u.runTx(ctx, key, func(tx *gorm.DB) error {
		for _, rule := range u.rules {
			if err := rule.Validate(tx, req); err != nil {
				return err
			}
		}

		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			if isUniqueViolation(err, "appointments_slot") {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		var appErr *apperr.Error
		if !errors.As(err, &appErr) {
			u.log.Warnf("Failed to book appointment: %+v", err)
		}
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, counselor=%s, date=%s, time=%s",
		appointment.ID, counselor.ID, date.Format("2006-01-02"), normalized)
	return appointment, nil
}

func (u *appointmentBookingUsecase) runInSlotTx(ctx context.Context, key string, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Advisory lock scoped to the transaction: concurrent bookings for the
		// same slot from other processes queue here instead of racing the
		// check-then-insert.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error; err != nil {
			return err
		}
		return fn(tx)
	})
}

func slotKey(counselor *entity.User, date time.Time, timeOfDay string) string {
	return fmt.Sprintf("appointment_slot:%s:%s:%s", counselor.ID, date.Format("2006-01-02"), timeOfDay)
}
