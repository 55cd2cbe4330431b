package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"go-counseling-care/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// fakeAvailabilityRepo serves availability windows from memory.
type fakeAvailabilityRepo struct {
	slots []entity.AvailabilitySlot
	err   error
}

func (f *fakeAvailabilityRepo) Create(db *gorm.DB, slot *entity.AvailabilitySlot) error {
	f.slots = append(f.slots, *slot)
	return nil
}

func (f *fakeAvailabilityRepo) FindByCounselor(db *gorm.DB, counselorID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	return f.slots, f.err
}

func (f *fakeAvailabilityRepo) FindByCounselorAndDay(db *gorm.DB, counselorID uuid.UUID, dayOfWeek int) ([]entity.AvailabilitySlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.AvailabilitySlot
	for _, s := range f.slots {
		if s.CounselorID == counselorID && s.DayOfWeek == dayOfWeek {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) DeleteByCounselor(db *gorm.DB, counselorID uuid.UUID) error {
	f.slots = nil
	return nil
}

// fakeAppointmentRepo keeps appointments in memory guarded by a mutex so
// concurrent booking tests stay race-free. Canceled appointments stay stored
// but no longer occupy their slot, mirroring the partial unique index.
type fakeAppointmentRepo struct {
	mu              sync.Mutex
	created         []entity.Appointment
	updateStatusErr error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{}
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	appointment.ID = uuid.New()
	f.created = append(f.created, *appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.created {
		if f.created[i].ID == id {
			a := f.created[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByPatient(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByCounselor(db *gorm.DB, counselorID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) ExistsForSlot(db *gorm.DB, counselorID uuid.UUID, date time.Time, timeOfDay string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	day := date.Format("2006-01-02")
	for i := range f.created {
		a := &f.created[i]
		if a.IsCanceled() {
			continue
		}
		if a.CounselorID == counselorID && a.AppointmentDate.Format("2006-01-02") == day && a.AppointmentTime == timeOfDay {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentRepo) ExistsByCounselorAndPatient(db *gorm.DB, counselorID, patientID uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	for i := range f.created {
		if f.created[i].ID == id {
			f.created[i].Status = status
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) DeleteByPatient(db *gorm.DB, patientID uuid.UUID) error {
	return nil
}

func (f *fakeAppointmentRepo) DeleteByCounselor(db *gorm.DB, counselorID uuid.UUID) error {
	return nil
}

// newDummyDB opens a gorm handle with no connection behind it, for usecases
// that derive a session from it before calling into fake repositories.
func newDummyDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{})
	if err != nil {
		t.Fatalf("open dummy db: %v", err)
	}
	return db
}

func activeCounselor() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		RoleID:   entity.RoleIDCounselor,
		Email:    "counselor@example.com",
		FullName: "Dr. Counselor",
		IsActive: true,
	}
}

func testPatient() *entity.PatientProfile {
	return &entity.PatientProfile{UserID: uuid.New()}
}

// mondayDate is a known Monday used across booking tests.
var mondayDate = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func TestCounselorEligibilityRule(t *testing.T) {
	rule := &counselorEligibilityRule{}

	t.Run("nil counselor", func(t *testing.T) {
		err := rule.Validate(nil, &BookingRequest{Counselor: nil})
		if !errors.Is(err, ErrCounselorNotFound) {
			t.Errorf("expected ErrCounselorNotFound, got %v", err)
		}
	})

	t.Run("not a counselor", func(t *testing.T) {
		user := activeCounselor()
		user.RoleID = entity.RoleIDPatient
		err := rule.Validate(nil, &BookingRequest{Counselor: user})
		if !errors.Is(err, ErrNotACounselor) {
			t.Errorf("expected ErrNotACounselor, got %v", err)
		}
	})

	t.Run("deactivated counselor", func(t *testing.T) {
		user := activeCounselor()
		user.IsActive = false
		err := rule.Validate(nil, &BookingRequest{Counselor: user})
		if !errors.Is(err, ErrCounselorDeactivated) {
			t.Errorf("expected ErrCounselorDeactivated, got %v", err)
		}
	})

	t.Run("active counselor passes", func(t *testing.T) {
		if err := rule.Validate(nil, &BookingRequest{Counselor: activeCounselor()}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCounselorAvailabilityRule(t *testing.T) {
	counselor := activeCounselor()
	availRepo := &fakeAvailabilityRepo{slots: []entity.AvailabilitySlot{
		{CounselorID: counselor.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{CounselorID: counselor.ID, DayOfWeek: 1, StartTime: "14:00:00", EndTime: "17:00:00"},
	}}
	rule := &counselorAvailabilityRule{availabilityRepo: availRepo}

	request := func(timeOfDay string) *BookingRequest {
		return &BookingRequest{
			Patient:   testPatient(),
			Counselor: counselor,
			Date:      mondayDate,
			Time:      timeOfDay,
		}
	}

	tests := []struct {
		name    string
		time    string
		wantErr error
	}{
		{name: "inside morning window", time: "10:00", wantErr: nil},
		{name: "window start is bookable", time: "09:00", wantErr: nil},
		{name: "window end is not bookable", time: "12:00", wantErr: ErrCounselorUnavailable},
		{name: "inside afternoon window stored with seconds", time: "15:00", wantErr: nil},
		{name: "between windows", time: "13:00", wantErr: ErrCounselorUnavailable},
		{name: "bad time format", time: "noonish", wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(nil, request(tt.time))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%s) = %v, want %v", tt.time, err, tt.wantErr)
			}
		})
	}

	t.Run("no windows on that day", func(t *testing.T) {
		// 2026-01-06 is a Tuesday; windows above are Monday only
		req := request("10:00")
		req.Date = mondayDate.AddDate(0, 0, 1)
		err := rule.Validate(nil, req)
		if !errors.Is(err, ErrCounselorUnavailable) {
			t.Errorf("expected ErrCounselorUnavailable, got %v", err)
		}
	})
}

func TestAppointmentConflictRule(t *testing.T) {
	counselor := activeCounselor()
	apptRepo := newFakeAppointmentRepo()
	rule := &appointmentConflictRule{appointmentRepo: apptRepo}

	req := &BookingRequest{
		Patient:   testPatient(),
		Counselor: counselor,
		Date:      mondayDate,
		Time:      "10:00",
	}

	if err := rule.Validate(nil, req); err != nil {
		t.Fatalf("empty calendar should pass: %v", err)
	}

	existing := &entity.Appointment{
		PatientID:       req.Patient.UserID,
		CounselorID:     counselor.ID,
		AppointmentDate: mondayDate,
		AppointmentTime: "10:00",
		Status:          entity.AppointmentStatusScheduled,
	}
	if err := apptRepo.Create(nil, existing); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := rule.Validate(nil, req); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken, got %v", err)
	}

	// Adjacent slot on the same day does not conflict
	adjacent := *req
	adjacent.Time = "11:00"
	if err := rule.Validate(nil, &adjacent); err != nil {
		t.Errorf("adjacent slot should pass: %v", err)
	}

	// A canceled appointment does not occupy its slot
	if err := apptRepo.UpdateStatus(nil, existing.ID, entity.AppointmentStatusCanceled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := rule.Validate(nil, req); err != nil {
		t.Errorf("canceled appointment should not block the slot: %v", err)
	}
}
