package schedule

import (
	"errors"
	"testing"

	"cliniq/models"
)

func testPicker() *SlotPicker {
	return NewSlotPicker([]models.ClassifiedSlot{
		{TimeSlot: models.TimeSlot{Start: "09:00", End: "09:15"}, Status: models.SlotBookable},
		{TimeSlot: models.TimeSlot{Start: "09:15", End: "09:30"}, Status: models.SlotBooked},
		{TimeSlot: models.TimeSlot{Start: "09:30", End: "09:45"}, Status: models.SlotBookable},
	})
}

func TestPickerSelectBookable(t *testing.T) {
	p := testPicker()
	if err := p.Select("09:00"); err != nil {
		t.Fatal(err)
	}
	if got := p.Selected(); got != "09:00" {
		t.Errorf("Selected() = %q, want 09:00", got)
	}
}

func TestPickerReplacesSelection(t *testing.T) {
	p := testPicker()
	if err := p.Select("09:00"); err != nil {
		t.Fatal(err)
	}
	if err := p.Select("09:30"); err != nil {
		t.Fatal(err)
	}
	// Only the latest choice is held.
	if got := p.Selected(); got != "09:30" {
		t.Errorf("Selected() = %q, want 09:30", got)
	}
}

func TestPickerRejectsBooked(t *testing.T) {
	p := testPicker()
	if err := p.Select("09:15"); !errors.Is(err, ErrSlotBooked) {
		t.Fatalf("Select booked: err = %v, want ErrSlotBooked", err)
	}
	if got := p.Selected(); got != "" {
		t.Errorf("rejected select set selection %q", got)
	}
}

func TestPickerRejectsUnknown(t *testing.T) {
	p := testPicker()
	if err := p.Select("23:00"); !errors.Is(err, ErrSlotUnknown) {
		t.Fatalf("Select unknown: err = %v, want ErrSlotUnknown", err)
	}
}

func TestPickerRejectionKeepsPriorSelection(t *testing.T) {
	p := testPicker()
	if err := p.Select("09:00"); err != nil {
		t.Fatal(err)
	}
	if err := p.Select("09:15"); err == nil {
		t.Fatal("expected rejection")
	}
	if got := p.Selected(); got != "09:00" {
		t.Errorf("Selected() = %q after rejected select, want 09:00", got)
	}
}

func TestPickerClear(t *testing.T) {
	p := testPicker()
	if err := p.Select("09:00"); err != nil {
		t.Fatal(err)
	}
	p.Clear()
	if got := p.Selected(); got != "" {
		t.Errorf("Selected() = %q after Clear, want empty", got)
	}
}
