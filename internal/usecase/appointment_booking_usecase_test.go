package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"go-counseling-care/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func newTestBookingUsecase(availRepo *fakeAvailabilityRepo, apptRepo *fakeAppointmentRepo) *appointmentBookingUsecase {
	log := logrus.New()
	log.SetOutput(io.Discard)

	u := &appointmentBookingUsecase{
		log:             log,
		appointmentRepo: apptRepo,
		rules: []bookingRule{
			&counselorEligibilityRule{},
			&counselorAvailabilityRule{availabilityRepo: availRepo},
			&appointmentConflictRule{appointmentRepo: apptRepo},
		},
		slots: newSlotLocker(),
	}
	// Tests run without a database; the per-slot mutex still serializes
	u.runTx = func(ctx context.Context, key string, fn func(tx *gorm.DB) error) error {
		return fn(nil)
	}
	return u
}

func mondayAvailability(counselor *entity.User) *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{slots: []entity.AvailabilitySlot{
		{CounselorID: counselor.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
	}}
}

func TestBookPreconditions(t *testing.T) {
	counselor := activeCounselor()
	u := newTestBookingUsecase(mondayAvailability(counselor), newFakeAppointmentRepo())

	tests := []struct {
		name      string
		patient   *entity.PatientProfile
		counselor *entity.User
		date      time.Time
		time      string
		wantErr   error
	}{
		{name: "nil patient", patient: nil, counselor: counselor, date: mondayDate, time: "10:00", wantErr: ErrPatientProfileNotFound},
		{name: "nil counselor", patient: testPatient(), counselor: nil, date: mondayDate, time: "10:00", wantErr: ErrCounselorNotFound},
		{name: "zero date", patient: testPatient(), counselor: counselor, date: time.Time{}, time: "10:00", wantErr: ErrBookingIncomplete},
		{name: "empty time", patient: testPatient(), counselor: counselor, date: mondayDate, time: "", wantErr: ErrBookingIncomplete},
		{name: "bad time", patient: testPatient(), counselor: counselor, date: mondayDate, time: "later", wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := u.Book(context.Background(), tt.patient, tt.counselor, tt.date, tt.time)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Book() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBookCreatesScheduledAppointment(t *testing.T) {
	counselor := activeCounselor()
	apptRepo := newFakeAppointmentRepo()
	u := newTestBookingUsecase(mondayAvailability(counselor), apptRepo)
	patient := testPatient()

	// Time arrives with seconds, as a postgres time column would render it
	appointment, err := u.Book(context.Background(), patient, counselor, mondayDate, "10:00:00")
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if appointment.Status != entity.AppointmentStatusScheduled {
		t.Errorf("status = %s, want %s", appointment.Status, entity.AppointmentStatusScheduled)
	}
	if appointment.AppointmentTime != "10:00" {
		t.Errorf("time = %q, want normalized %q", appointment.AppointmentTime, "10:00")
	}
	if appointment.PatientID != patient.UserID || appointment.CounselorID != counselor.ID {
		t.Errorf("appointment not linked to patient/counselor: %+v", appointment)
	}
	if len(apptRepo.created) != 1 {
		t.Errorf("expected 1 created appointment, got %d", len(apptRepo.created))
	}
}

func TestBookRuleOrderFirstFailureWins(t *testing.T) {
	// Deactivated counselor with no availability and a taken slot: the
	// eligibility failure must be the one reported.
	counselor := activeCounselor()
	counselor.IsActive = false

	apptRepo := newFakeAppointmentRepo()
	if err := apptRepo.Create(nil, &entity.Appointment{
		CounselorID:     counselor.ID,
		AppointmentDate: mondayDate,
		AppointmentTime: "10:00",
		Status:          entity.AppointmentStatusScheduled,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	u := newTestBookingUsecase(&fakeAvailabilityRepo{}, apptRepo)

	_, err := u.Book(context.Background(), testPatient(), counselor, mondayDate, "10:00")
	if !errors.Is(err, ErrCounselorDeactivated) {
		t.Errorf("expected ErrCounselorDeactivated, got %v", err)
	}
}

func TestBookOutsideAvailability(t *testing.T) {
	counselor := activeCounselor()
	u := newTestBookingUsecase(mondayAvailability(counselor), newFakeAppointmentRepo())

	// Window end is exclusive
	_, err := u.Book(context.Background(), testPatient(), counselor, mondayDate, "17:00")
	if !errors.Is(err, ErrCounselorUnavailable) {
		t.Errorf("expected ErrCounselorUnavailable, got %v", err)
	}
}

func TestBookRejectsDoubleBooking(t *testing.T) {
	counselor := activeCounselor()
	apptRepo := newFakeAppointmentRepo()
	u := newTestBookingUsecase(mondayAvailability(counselor), apptRepo)

	if _, err := u.Book(context.Background(), testPatient(), counselor, mondayDate, "10:00"); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := u.Book(context.Background(), testPatient(), counselor, mondayDate, "10:00")
	if !errors.Is(err, ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken, got %v", err)
	}

	// Equivalent spelling of the same instant is still the same slot
	_, err = u.Book(context.Background(), testPatient(), counselor, mondayDate, "10:00:00")
	if !errors.Is(err, ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken for seconds spelling, got %v", err)
	}
}

func TestBookAfterCancelFreesSlot(t *testing.T) {
	counselor := activeCounselor()
	apptRepo := newFakeAppointmentRepo()
	u := newTestBookingUsecase(mondayAvailability(counselor), apptRepo)

	first, err := u.Book(context.Background(), testPatient(), counselor, mondayDate, "10:00")
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := u.Book(context.Background(), testPatient(), counselor, mondayDate, "10:00"); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken while scheduled, got %v", err)
	}

	if err := apptRepo.UpdateStatus(nil, first.ID, entity.AppointmentStatusCanceled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	second, err := u.Book(context.Background(), testPatient(), counselor, mondayDate, "10:00")
	if err != nil {
		t.Fatalf("rebooking a canceled slot: %v", err)
	}
	if second.ID == first.ID {
		t.Errorf("rebooking should create a new appointment, not reuse %s", first.ID)
	}
	if len(apptRepo.created) != 2 {
		t.Errorf("expected 2 stored appointments, got %d", len(apptRepo.created))
	}
}

func TestBookConcurrentSameSlot(t *testing.T) {
	counselor := activeCounselor()
	apptRepo := newFakeAppointmentRepo()
	u := newTestBookingUsecase(mondayAvailability(counselor), apptRepo)

	const attempts = 16
	errs := make([]error, attempts)
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = u.Book(context.Background(), testPatient(), counselor, mondayDate, "10:00")
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotTaken):
			lost++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if won != 1 {
		t.Errorf("expected exactly 1 successful booking, got %d", won)
	}
	if lost != attempts-1 {
		t.Errorf("expected %d conflicts, got %d", attempts-1, lost)
	}
	if len(apptRepo.created) != 1 {
		t.Errorf("expected 1 stored appointment, got %d", len(apptRepo.created))
	}
}

func TestBookDifferentSlotsDoNotConflict(t *testing.T) {
	counselor := activeCounselor()
	apptRepo := newFakeAppointmentRepo()
	u := newTestBookingUsecase(mondayAvailability(counselor), apptRepo)

	if _, err := u.Book(context.Background(), testPatient(), counselor, mondayDate, "10:00"); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := u.Book(context.Background(), testPatient(), counselor, mondayDate, "11:00"); err != nil {
		t.Fatalf("adjacent slot booking: %v", err)
	}
	// Same time a week later is a different slot
	if _, err := u.Book(context.Background(), testPatient(), counselor, mondayDate.AddDate(0, 0, 7), "10:00"); err != nil {
		t.Fatalf("next week booking: %v", err)
	}
}
