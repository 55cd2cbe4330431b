package usecase

import (
	"context"
	"strings"

	"go-counseling-care/internal/converter"
	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"
	"go-counseling-care/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CounselorUsecase interface {
	// MyPatients returns patients assigned to the counselor plus patients who
	// booked with them, deduplicated, assigned ones first.
	MyPatients(ctx context.Context, counselorUserID uuid.UUID) (*dto.PatientListResponse, error)
	// PatientMood is gated: the counselor must be assigned to the patient or
	// have a non-canceled appointment with them.
	PatientMood(ctx context.Context, counselorUserID, patientUserID uuid.UUID) (*dto.MoodEntryListResponse, error)
	MyAppointments(ctx context.Context, counselorUserID uuid.UUID) (*dto.AppointmentListResponse, error)
	UpdateAppointmentStatus(ctx context.Context, counselorUserID, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error)
	MyAvailability(ctx context.Context, counselorUserID uuid.UUID) (*dto.AvailabilityListResponse, error)
	// ReplaceAvailability swaps the counselor's whole weekly schedule in one
	// transaction. Partial updates are not supported.
	ReplaceAvailability(ctx context.Context, counselorUserID uuid.UUID, req *dto.ReplaceAvailabilityRequest) (*dto.AvailabilityListResponse, error)
}

type counselorUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	patientProfileRepo repository.PatientProfileRepository
	availabilityRepo   repository.AvailabilityRepository
	appointmentRepo    repository.AppointmentRepository
	moodRepo           repository.MoodEntryRepository
}

func NewCounselorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientProfileRepo repository.PatientProfileRepository,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
	moodRepo repository.MoodEntryRepository,
) CounselorUsecase {
	return &counselorUsecase{
		db:                 db,
		log:                log,
		patientProfileRepo: patientProfileRepo,
		availabilityRepo:   availabilityRepo,
		appointmentRepo:    appointmentRepo,
		moodRepo:           moodRepo,
	}
}

func (u *counselorUsecase) MyPatients(ctx context.Context, counselorUserID uuid.UUID) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)

	assigned, err := u.patientProfileRepo.FindByAssignedCounselor(db, counselorUserID)
	if err != nil {
		u.log.Warnf("Failed to find assigned patients: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByCounselor(db, counselorUserID)
	if err != nil {
		u.log.Warnf("Failed to find counselor appointments: %+v", err)
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(assigned))
	patients := make([]dto.PatientSummary, 0, len(assigned))
	for i := range assigned {
		if summary := converter.PatientToSummary(&assigned[i]); summary != nil {
			patients = append(patients, *summary)
			seen[assigned[i].UserID] = true
		}
	}
	for i := range appointments {
		if appointments[i].IsCanceled() || seen[appointments[i].PatientID] {
			continue
		}
		if summary := converter.PatientToSummary(&appointments[i].Patient); summary != nil {
			patients = append(patients, *summary)
			seen[appointments[i].PatientID] = true
		}
	}

	return &dto.PatientListResponse{
		Patients: patients,
		Total:    len(patients),
	}, nil
}

func (u *counselorUsecase) PatientMood(ctx context.Context, counselorUserID, patientUserID uuid.UUID) (*dto.MoodEntryListResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.patientProfileRepo.FindByUserID(db, patientUserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientProfileNotFound
	}

	allowed := profile.AssignedCounselorID != nil && *profile.AssignedCounselorID == counselorUserID
	if !allowed {
		allowed, err = u.appointmentRepo.ExistsByCounselorAndPatient(db, counselorUserID, patientUserID)
		if err != nil {
			u.log.Warnf("Failed to check counselor-patient relation: %+v", err)
			return nil, err
		}
	}
	if !allowed {
		return nil, ErrAccessDenied
	}

	entries, err := u.moodRepo.FindByPatient(db, patientUserID)
	if err != nil {
		u.log.Warnf("Failed to list mood entries: %+v", err)
		return nil, err
	}

	return &dto.MoodEntryListResponse{
		Entries: converter.MoodEntriesToResponses(entries),
		Total:   len(entries),
	}, nil
}

func (u *counselorUsecase) MyAppointments(ctx context.Context, counselorUserID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByCounselor(u.db.WithContext(ctx), counselorUserID)
	if err != nil {
		u.log.Warnf("Failed to list counselor appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *counselorUsecase) UpdateAppointmentStatus(ctx context.Context, counselorUserID, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	newStatus := entity.AppointmentStatus(strings.ToLower(strings.TrimSpace(status)))
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.CounselorID != counselorUserID {
		return nil, ErrAccessDenied
	}

	if err := u.appointmentRepo.UpdateStatus(db, appointmentID, newStatus); err != nil {
		// Restoring a canceled appointment after its slot was rebooked trips
		// the partial unique index on appointments.
		if isUniqueViolation(err, "appointments_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	appointment.Status = newStatus

	return converter.AppointmentToResponse(appointment), nil
}

func (u *counselorUsecase) MyAvailability(ctx context.Context, counselorUserID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	slots, err := u.availabilityRepo.FindByCounselor(u.db.WithContext(ctx), counselorUserID)
	if err != nil {
		u.log.Warnf("Failed to find availability slots: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Slots: converter.AvailabilitySlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

func (u *counselorUsecase) ReplaceAvailability(ctx context.Context, counselorUserID uuid.UUID, req *dto.ReplaceAvailabilityRequest) (*dto.AvailabilityListResponse, error) {
	slots := make([]entity.AvailabilitySlot, 0, len(req.Slots))
	for _, s := range req.Slots {
		if s.DayOfWeek < entity.DayOfWeekMin || s.DayOfWeek > entity.DayOfWeekMax {
			return nil, ErrInvalidDayOfWeek
		}
		start, err := parseTimeOfDay(s.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		end, err := parseTimeOfDay(s.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if !start.Before(end) {
			return nil, ErrInvalidTimeRange
		}
		slots = append(slots, entity.AvailabilitySlot{
			CounselorID: counselorUserID,
			DayOfWeek:   s.DayOfWeek,
			StartTime:   start.Format("15:04"),
			EndTime:     end.Format("15:04"),
		})
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.availabilityRepo.DeleteByCounselor(tx, counselorUserID); err != nil {
		u.log.Warnf("Failed to delete availability slots: %+v", err)
		return nil, err
	}
	for i := range slots {
		if err := u.availabilityRepo.Create(tx, &slots[i]); err != nil {
			u.log.Warnf("Failed to create availability slot: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Slots: converter.AvailabilitySlotsToResponses(slots),
		Total: len(slots),
	}, nil
}
