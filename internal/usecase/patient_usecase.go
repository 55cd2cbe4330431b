package usecase

import (
	"context"
	"time"

	"go-counseling-care/internal/converter"
	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"
	"go-counseling-care/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	ListCounselors(ctx context.Context) (*dto.UserListResponse, error)
	// CounselorAvailability returns the counselor's weekly windows, optionally
	// filtered to one day (0=Sunday..6=Saturday).
	CounselorAvailability(ctx context.Context, counselorID uuid.UUID, dayOfWeek *int) (*dto.AvailabilityListResponse, error)
	BookAppointment(ctx context.Context, patientUserID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	MyAppointments(ctx context.Context, patientUserID uuid.UUID) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, patientUserID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	UpsertMood(ctx context.Context, patientUserID uuid.UUID, req *dto.MoodRequest) (*dto.MoodEntryResponse, error)
	MoodHistory(ctx context.Context, patientUserID uuid.UUID) (*dto.MoodEntryListResponse, error)
}

type patientUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	availabilityRepo   repository.AvailabilityRepository
	appointmentRepo    repository.AppointmentRepository
	moodRepo           repository.MoodEntryRepository
	booking            AppointmentBookingUsecase
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
	moodRepo repository.MoodEntryRepository,
	booking AppointmentBookingUsecase,
) PatientUsecase {
	return &patientUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		availabilityRepo:   availabilityRepo,
		appointmentRepo:    appointmentRepo,
		moodRepo:           moodRepo,
		booking:            booking,
	}
}

func (u *patientUsecase) ListCounselors(ctx context.Context) (*dto.UserListResponse, error) {
	counselors, err := u.userRepo.FindActiveByRoleID(u.db.WithContext(ctx), entity.RoleIDCounselor)
	if err != nil {
		u.log.Warnf("Failed to list counselors: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(counselors),
		Total: len(counselors),
	}, nil
}

func (u *patientUsecase) CounselorAvailability(ctx context.Context, counselorID uuid.UUID, dayOfWeek *int) (*dto.AvailabilityListResponse, error) {
	db := u.db.WithContext(ctx)

	counselor, err := u.userRepo.FindByID(db, counselorID)
	if err != nil {
		u.log.Warnf("Failed to find counselor: %+v", err)
		return nil, err
	}
	if counselor == nil {
		return nil, ErrUserNotFound
	}
	if !counselor.IsCounselor() {
		return nil, ErrUserNotCounselor
	}

	var slots []entity.AvailabilitySlot
	if dayOfWeek != nil {
		if *dayOfWeek < entity.DayOfWeekMin || *dayOfWeek > entity.DayOfWeekMax {
			return nil, ErrInvalidDayOfWeek
		}
		slots, err = u.availabilityRepo.FindByCounselorAndDay(db, counselorID, *dayOfWeek)
	} else {
		slots, err = u.availabilityRepo.FindByCounselor(db, counselorID)
	}
	if err != nil {
		u.log.Warnf("Failed to find availability slots: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Slots: converter.AvailabilitySlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

func (u *patientUsecase) BookAppointment(ctx context.Context, patientUserID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.patientProfileRepo.FindByUserID(db, patientUserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientProfileNotFound
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	counselor, err := u.userRepo.FindByID(db, req.CounselorID)
	if err != nil {
		u.log.Warnf("Failed to find counselor: %+v", err)
		return nil, err
	}

	appointment, err := u.booking.Book(ctx, profile, counselor, date, req.AppointmentTime)
	if err != nil {
		return nil, err
	}

	appointment.Counselor = *counselor
	return converter.AppointmentToResponse(appointment), nil
}

func (u *patientUsecase) MyAppointments(ctx context.Context, patientUserID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatient(u.db.WithContext(ctx), patientUserID)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *patientUsecase) CancelAppointment(ctx context.Context, patientUserID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != patientUserID {
		return nil, ErrAccessDenied
	}

	if !appointment.IsCanceled() {
		if err := u.appointmentRepo.UpdateStatus(db, appointmentID, entity.AppointmentStatusCanceled); err != nil {
			u.log.Warnf("Failed to cancel appointment: %+v", err)
			return nil, err
		}
		appointment.Status = entity.AppointmentStatusCanceled
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *patientUsecase) UpsertMood(ctx context.Context, patientUserID uuid.UUID, req *dto.MoodRequest) (*dto.MoodEntryResponse, error) {
	if req.Rating < 1 || req.Rating > 10 {
		return nil, ErrMoodRatingOutOfRange
	}

	// Default to today's calendar date, stored at midnight UTC like parsed
	// request dates
	year, month, day := time.Now().Date()
	entryDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if req.EntryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EntryDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		entryDate = parsed
	}

	db := u.db.WithContext(ctx)

	// One entry per day: a second submission for the same date overwrites
	entry, err := u.moodRepo.FindByPatientAndDate(db, patientUserID, entryDate)
	if err != nil {
		u.log.Warnf("Failed to find mood entry: %+v", err)
		return nil, err
	}
	if entry == nil {
		entry = &entity.MoodEntry{
			PatientID: patientUserID,
			EntryDate: entryDate,
		}
	}
	entry.Rating = req.Rating
	entry.Notes = req.Notes

	if err := u.moodRepo.Save(db, entry); err != nil {
		u.log.Warnf("Failed to save mood entry: %+v", err)
		return nil, err
	}

	return converter.MoodEntryToResponse(entry), nil
}

func (u *patientUsecase) MoodHistory(ctx context.Context, patientUserID uuid.UUID) (*dto.MoodEntryListResponse, error) {
	entries, err := u.moodRepo.FindByPatient(u.db.WithContext(ctx), patientUserID)
	if err != nil {
		u.log.Warnf("Failed to list mood entries: %+v", err)
		return nil, err
	}

	return &dto.MoodEntryListResponse{
		Entries: converter.MoodEntriesToResponses(entries),
		Total:   len(entries),
	}, nil
}
