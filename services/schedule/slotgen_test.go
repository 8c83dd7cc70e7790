package schedule

import (
	"testing"
	"time"

	"cliniq/models"
)

func starts(slots []models.TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start
	}
	return out
}

func TestGenerateSlotsPlainWindow(t *testing.T) {
	slots, err := GenerateSlots("09:00", "10:00", "", "", 0)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"09:00", "09:15", "09:30", "09:45"}
	got := starts(slots)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d start = %q, want %q", i, got[i], want[i])
		}
	}
	if slots[0].End != "09:15" {
		t.Errorf("first slot end = %q, want 09:15", slots[0].End)
	}
	if slots[len(slots)-1].End != "10:00" {
		t.Errorf("last slot end = %q, want 10:00", slots[len(slots)-1].End)
	}
}

func TestGenerateSlotsSkipsBreak(t *testing.T) {
	slots, err := GenerateSlots("09:00", "11:00", "09:30", "10:00", 0)
	if err != nil {
		t.Fatal(err)
	}

	got := starts(slots)
	for _, s := range got {
		if s == "09:30" || s == "09:45" {
			t.Errorf("slot %s falls inside the break", s)
		}
	}
	// Generation resumes at the break end.
	want := []string{"09:00", "09:15", "10:00", "10:15", "10:30", "10:45"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d start = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenerateSlotsPartialTailDropped(t *testing.T) {
	// 09:00-09:50 fits three full 15 minute slots; the 09:45-10:00 slot
	// would overrun and must not be emitted.
	slots, err := GenerateSlots("09:00", "09:50", "", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3: %v", len(slots), starts(slots))
	}
}

func TestGenerateSlotsDisplayFormat(t *testing.T) {
	slots, err := GenerateSlots("13:00", "13:30", "", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if slots[0].DisplayStart != "01:00 pm" {
		t.Errorf("display start = %q, want %q", slots[0].DisplayStart, "01:00 pm")
	}
	if slots[0].DisplayEnd != "01:15 pm" {
		t.Errorf("display end = %q, want %q", slots[0].DisplayEnd, "01:15 pm")
	}
}

func TestGenerateSlotsCustomInterval(t *testing.T) {
	slots, err := GenerateSlots("09:00", "10:00", "", "", 30*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if slots[1].Start != "09:30" {
		t.Errorf("second slot start = %q, want 09:30", slots[1].Start)
	}
}

func TestGenerateSlotsBadClock(t *testing.T) {
	if _, err := GenerateSlots("9am", "10:00", "", "", 0); err == nil {
		t.Error("expected error for malformed start time")
	}
	if _, err := GenerateSlots("09:00", "25:99", "", "", 0); err == nil {
		t.Error("expected error for malformed end time")
	}
}

func TestGenerateSlotsEmptyWindow(t *testing.T) {
	slots, err := GenerateSlots("10:00", "10:00", "", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d slots for an empty window", len(slots))
	}
}
