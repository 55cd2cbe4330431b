package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// fakeMoodRepo keeps mood entries in memory, one per (patient, entry date).
type fakeMoodRepo struct {
	entries []entity.MoodEntry
}

func (f *fakeMoodRepo) Save(db *gorm.DB, entry *entity.MoodEntry) error {
	for i := range f.entries {
		if f.entries[i].PatientID == entry.PatientID && f.entries[i].EntryDate.Equal(entry.EntryDate) {
			f.entries[i] = *entry
			return nil
		}
	}
	entry.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeMoodRepo) FindByPatientAndDate(db *gorm.DB, patientID uuid.UUID, entryDate time.Time) (*entity.MoodEntry, error) {
	for i := range f.entries {
		if f.entries[i].PatientID == patientID && f.entries[i].EntryDate.Equal(entryDate) {
			e := f.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeMoodRepo) FindByPatient(db *gorm.DB, patientID uuid.UUID) ([]entity.MoodEntry, error) {
	var out []entity.MoodEntry
	for _, e := range f.entries {
		if e.PatientID == patientID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeMoodRepo) DeleteByPatient(db *gorm.DB, patientID uuid.UUID) error {
	var kept []entity.MoodEntry
	for _, e := range f.entries {
		if e.PatientID != patientID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func newTestPatientUsecase(t *testing.T, apptRepo *fakeAppointmentRepo) *patientUsecase {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &patientUsecase{
		db:              newDummyDB(t),
		log:             log,
		appointmentRepo: apptRepo,
		moodRepo:        &fakeMoodRepo{},
	}
}

func TestUpsertMoodRatingBounds(t *testing.T) {
	u := newTestPatientUsecase(t, newFakeAppointmentRepo())
	patientID := uuid.New()

	for _, rating := range []int{0, -3, 11, 100} {
		_, err := u.UpsertMood(context.Background(), patientID, &dto.MoodRequest{Rating: rating})
		if !errors.Is(err, ErrMoodRatingOutOfRange) {
			t.Errorf("UpsertMood(rating=%d) = %v, want ErrMoodRatingOutOfRange", rating, err)
		}
	}
}

func TestUpsertMoodRejectsBadDate(t *testing.T) {
	u := newTestPatientUsecase(t, newFakeAppointmentRepo())

	_, err := u.UpsertMood(context.Background(), uuid.New(), &dto.MoodRequest{
		Rating:    5,
		EntryDate: "05-01-2026",
	})
	if !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("UpsertMood() = %v, want ErrInvalidDateFormat", err)
	}
}

func TestUpsertMoodDefaultsToToday(t *testing.T) {
	u := newTestPatientUsecase(t, newFakeAppointmentRepo())
	moodRepo := u.moodRepo.(*fakeMoodRepo)
	patientID := uuid.New()

	if _, err := u.UpsertMood(context.Background(), patientID, &dto.MoodRequest{Rating: 7}); err != nil {
		t.Fatalf("UpsertMood: %v", err)
	}

	if len(moodRepo.entries) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(moodRepo.entries))
	}
	year, month, day := time.Now().Date()
	want := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if got := moodRepo.entries[0].EntryDate; !got.Equal(want) {
		t.Errorf("entry date = %v, want today's calendar date %v", got, want)
	}
}

func TestCancelAppointmentFreesSlot(t *testing.T) {
	counselor := activeCounselor()
	apptRepo := newFakeAppointmentRepo()
	booking := newTestBookingUsecase(mondayAvailability(counselor), apptRepo)
	u := newTestPatientUsecase(t, apptRepo)

	patient := testPatient()
	first, err := booking.Book(context.Background(), patient, counselor, mondayDate, "10:00")
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	if _, err := u.CancelAppointment(context.Background(), patient.UserID, first.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := booking.Book(context.Background(), testPatient(), counselor, mondayDate, "10:00"); err != nil {
		t.Fatalf("rebooking after cancel: %v", err)
	}
}

func TestCancelAppointmentAuthorization(t *testing.T) {
	counselor := activeCounselor()
	apptRepo := newFakeAppointmentRepo()
	booking := newTestBookingUsecase(mondayAvailability(counselor), apptRepo)
	u := newTestPatientUsecase(t, apptRepo)

	patient := testPatient()
	appointment, err := booking.Book(context.Background(), patient, counselor, mondayDate, "10:00")
	if err != nil {
		t.Fatalf("booking: %v", err)
	}

	if _, err := u.CancelAppointment(context.Background(), uuid.New(), appointment.ID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("cancel by another patient = %v, want ErrAccessDenied", err)
	}
	if _, err := u.CancelAppointment(context.Background(), patient.UserID, uuid.New()); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("cancel unknown appointment = %v, want ErrAppointmentNotFound", err)
	}
}
