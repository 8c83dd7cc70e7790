package schedule

import (
	"context"
	"testing"

	"cliniq/models"
)

type fakeScheduleRepo struct {
	windows map[string]*models.WeeklyWindow // keyed by day
	saved   []*models.WeeklyWindow
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, w *models.WeeklyWindow) error {
	if f.windows == nil {
		f.windows = map[string]*models.WeeklyWindow{}
	}
	f.windows[w.Day] = w
	f.saved = append(f.saved, w)
	return nil
}

func (f *fakeScheduleRepo) GetByDoctorAndDay(ctx context.Context, doctorID, day, hospitalID string) (*models.WeeklyWindow, error) {
	return f.windows[day], nil
}

func (f *fakeScheduleRepo) ListByDoctor(ctx context.Context, doctorID, hospitalID string) ([]models.WeeklyWindow, error) {
	var out []models.WeeklyWindow
	for _, w := range f.windows {
		out = append(out, *w)
	}
	return out, nil
}

type fakeAppointmentRepo struct {
	booked []string
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *models.Appointment) error { return nil }
func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id, hospitalID string) (*models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) List(ctx context.Context, hospitalID string, filter models.AppointmentFilter) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) ListByPatient(ctx context.Context, patientID, hospitalID string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) Delete(ctx context.Context, id, hospitalID string) error { return nil }
func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, doctorID, hospitalID, status string) error {
	return nil
}
func (f *fakeAppointmentRepo) BookedStarts(ctx context.Context, doctorID, date, hospitalID string) ([]string, error) {
	return f.booked, nil
}
func (f *fakeAppointmentRepo) Count(ctx context.Context, hospitalID string) (int64, error) {
	return 0, nil
}
func (f *fakeAppointmentRepo) Recent(ctx context.Context, hospitalID string, limit int64) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) ForDoctorOnDate(ctx context.Context, doctorID, date, hospitalID string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) UpcomingForDoctor(ctx context.Context, doctorID, after, hospitalID string, limit int64) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) LastVisitDates(ctx context.Context, doctorID, hospitalID string) (map[string]string, error) {
	return nil, nil
}

func newTestService(windows map[string]*models.WeeklyWindow, booked []string) *DefaultScheduleService {
	return &DefaultScheduleService{
		Repo:         &fakeScheduleRepo{windows: windows},
		Appointments: &fakeAppointmentRepo{booked: booked},
	}
}

func TestDayAvailabilityInvalidDate(t *testing.T) {
	svc := newTestService(nil, nil)

	resp, err := svc.DayAvailability(context.Background(), "d1", "21-08-2026", "h1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Error != MsgInvalidDate {
		t.Errorf("error = %q, want %q", resp.Error, MsgInvalidDate)
	}
}

func TestDayAvailabilityNoWindow(t *testing.T) {
	svc := newTestService(nil, nil)

	// 2026-08-21 is a Friday with no configured window.
	resp, err := svc.DayAvailability(context.Background(), "d1", "2026-08-21", "h1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Error != MsgNotAvailable {
		t.Errorf("error = %q, want %q", resp.Error, MsgNotAvailable)
	}
}

func TestDayAvailabilityReturnsSlotsAndBooked(t *testing.T) {
	windows := map[string]*models.WeeklyWindow{
		"Friday": {DoctorID: "d1", Day: "Friday", StartTime: "09:00", EndTime: "10:00", HospitalID: "h1"},
	}
	svc := newTestService(windows, []string{"09:15"})

	resp, err := svc.DayAvailability(context.Background(), "d1", "2026-08-21", "h1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error %q", resp.Error)
	}
	if len(resp.Slots) != 4 {
		t.Errorf("got %d slots, want 4", len(resp.Slots))
	}
	if len(resp.BookedSlots) != 1 || resp.BookedSlots[0] != "09:15" {
		t.Errorf("booked slots = %v, want [09:15]", resp.BookedSlots)
	}
}

func TestClassifiedAvailability(t *testing.T) {
	windows := map[string]*models.WeeklyWindow{
		"Friday": {DoctorID: "d1", Day: "Friday", StartTime: "09:00", EndTime: "09:30", HospitalID: "h1"},
	}
	svc := newTestService(windows, []string{"09:00"})

	classified, errMsg, err := svc.ClassifiedAvailability(context.Background(), "d1", "2026-08-21", "h1")
	if err != nil || errMsg != "" {
		t.Fatalf("unexpected failure: %v %q", err, errMsg)
	}
	if len(classified) != 2 {
		t.Fatalf("got %d classified slots, want 2", len(classified))
	}
	if classified[0].Status != models.SlotBooked || classified[1].Status != models.SlotBookable {
		t.Errorf("statuses = %q, %q", classified[0].Status, classified[1].Status)
	}
}

func TestSetWeeklyWindowValidation(t *testing.T) {
	svc := newTestService(nil, nil)
	ctx := context.Background()

	cases := []models.WeeklyWindowRequest{
		{Day: "Funday", StartTime: "09:00", EndTime: "17:00"},
		{Day: "Monday", StartTime: "17:00", EndTime: "09:00"},
		{Day: "Monday", StartTime: "09:00", EndTime: "17:00", BreakStart: "13:00"},
		{Day: "Monday", StartTime: "09:00", EndTime: "17:00", BreakStart: "08:00", BreakEnd: "09:30"},
		{Day: "Monday", StartTime: "nine", EndTime: "17:00"},
	}
	for _, req := range cases {
		if _, err := svc.SetWeeklyWindow(ctx, "d1", "h1", req); err == nil {
			t.Errorf("request %+v accepted, want rejection", req)
		}
	}

	if _, err := svc.SetWeeklyWindow(ctx, "d1", "h1", models.WeeklyWindowRequest{
		Day: "Monday", StartTime: "09:00", EndTime: "17:00", BreakStart: "13:00", BreakEnd: "14:00",
	}); err != nil {
		t.Errorf("valid window rejected: %v", err)
	}
}

func TestSetWeeklyWindowReplacesSameDay(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := &DefaultScheduleService{Repo: repo, Appointments: &fakeAppointmentRepo{}}
	ctx := context.Background()

	for _, start := range []string{"09:00", "10:00"} {
		if _, err := svc.SetWeeklyWindow(ctx, "d1", "h1", models.WeeklyWindowRequest{
			Day: "Tuesday", StartTime: start, EndTime: "17:00",
		}); err != nil {
			t.Fatal(err)
		}
	}

	if got := repo.windows["Tuesday"].StartTime; got != "10:00" {
		t.Errorf("window start = %q after second upsert, want 10:00", got)
	}
}
