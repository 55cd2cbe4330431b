package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func newTestCounselorUsecase(t *testing.T, apptRepo *fakeAppointmentRepo) *counselorUsecase {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &counselorUsecase{db: newDummyDB(t), log: log, appointmentRepo: apptRepo}
}

func TestReplaceAvailabilityValidation(t *testing.T) {
	u := newTestCounselorUsecase(t, newFakeAppointmentRepo())
	counselorID := uuid.New()

	tests := []struct {
		name    string
		slot    dto.AvailabilitySlotRequest
		wantErr error
	}{
		{
			name:    "day below range",
			slot:    dto.AvailabilitySlotRequest{DayOfWeek: -1, StartTime: "09:00", EndTime: "17:00"},
			wantErr: ErrInvalidDayOfWeek,
		},
		{
			name:    "day above range",
			slot:    dto.AvailabilitySlotRequest{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"},
			wantErr: ErrInvalidDayOfWeek,
		},
		{
			name:    "bad start time",
			slot:    dto.AvailabilitySlotRequest{DayOfWeek: 1, StartTime: "morning", EndTime: "17:00"},
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "bad end time",
			slot:    dto.AvailabilitySlotRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "late"},
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "start equals end",
			slot:    dto.AvailabilitySlotRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "start after end",
			slot:    dto.AvailabilitySlotRequest{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.ReplaceAvailabilityRequest{Slots: []dto.AvailabilitySlotRequest{tt.slot}}
			_, err := u.ReplaceAvailability(context.Background(), counselorID, req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReplaceAvailability() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateAppointmentStatusRejectsUnknownStatus(t *testing.T) {
	u := newTestCounselorUsecase(t, newFakeAppointmentRepo())

	for _, status := range []string{"", "done", "rescheduled", "SCHEDULEDD"} {
		_, err := u.UpdateAppointmentStatus(context.Background(), uuid.New(), uuid.New(), status)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("UpdateAppointmentStatus(%q) = %v, want ErrInvalidStatus", status, err)
		}
	}
}

func TestUpdateAppointmentStatusRestoreIntoTakenSlot(t *testing.T) {
	counselorID := uuid.New()
	apptRepo := newFakeAppointmentRepo()
	u := newTestCounselorUsecase(t, apptRepo)

	canceled := &entity.Appointment{
		PatientID:       uuid.New(),
		CounselorID:     counselorID,
		AppointmentDate: mondayDate,
		AppointmentTime: "10:00",
		Status:          entity.AppointmentStatusCanceled,
	}
	if err := apptRepo.Create(nil, canceled); err != nil {
		t.Fatalf("create: %v", err)
	}

	// The slot was rebooked after the cancel; restoring the old appointment
	// violates the unique index and must surface as a slot conflict.
	apptRepo.updateStatusErr = &pgconn.PgError{Code: "23505", ConstraintName: "appointments_slot_key"}

	_, err := u.UpdateAppointmentStatus(context.Background(), counselorID, canceled.ID, "scheduled")
	if !errors.Is(err, ErrSlotTaken) {
		t.Errorf("UpdateAppointmentStatus() = %v, want ErrSlotTaken", err)
	}
}
