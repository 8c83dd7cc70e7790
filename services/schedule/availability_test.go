package schedule

import (
	"reflect"
	"testing"

	"cliniq/models"
)

func slotAt(start, end string) models.TimeSlot {
	return models.TimeSlot{Start: start, End: end}
}

func TestClassifyMarksBookedStarts(t *testing.T) {
	slots := []models.TimeSlot{
		slotAt("09:00", "09:15"),
		slotAt("09:15", "09:30"),
		slotAt("09:30", "09:45"),
	}
	booked := NewBookedSet([]string{"09:15"})

	classified := Classify(slots, booked)

	wantStatus := []models.SlotStatus{models.SlotBookable, models.SlotBooked, models.SlotBookable}
	for i, cs := range classified {
		if cs.Status != wantStatus[i] {
			t.Errorf("slot %s status = %q, want %q", cs.Start, cs.Status, wantStatus[i])
		}
	}
}

func TestClassifyPreservesOrder(t *testing.T) {
	slots := []models.TimeSlot{
		slotAt("11:00", "11:15"),
		slotAt("09:00", "09:15"),
		slotAt("10:00", "10:15"),
	}

	classified := Classify(slots, NewBookedSet(nil))
	for i, cs := range classified {
		if cs.Start != slots[i].Start {
			t.Errorf("position %d holds %s, want %s", i, cs.Start, slots[i].Start)
		}
	}
}

func TestClassifyExactStringMatchOnly(t *testing.T) {
	slots := []models.TimeSlot{slotAt("09:00", "09:15")}

	// "9:00" is not "09:00"; no normalization is attempted.
	classified := Classify(slots, NewBookedSet([]string{"9:00"}))
	if classified[0].Status != models.SlotBookable {
		t.Errorf("status = %q, want bookable for a non-identical start string", classified[0].Status)
	}
}

func TestClassifyIsPure(t *testing.T) {
	slots := []models.TimeSlot{
		slotAt("09:00", "09:15"),
		slotAt("09:15", "09:30"),
	}
	booked := NewBookedSet([]string{"09:00"})

	first := Classify(slots, booked)
	second := Classify(slots, booked)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated classification of identical inputs differs")
	}
}

func TestClassifyEmptyInputs(t *testing.T) {
	if got := Classify(nil, NewBookedSet([]string{"09:00"})); len(got) != 0 {
		t.Errorf("classifying no slots yielded %d entries", len(got))
	}

	classified := Classify([]models.TimeSlot{slotAt("09:00", "09:15")}, NewBookedSet(nil))
	if classified[0].Status != models.SlotBookable {
		t.Errorf("empty booked set: status = %q, want bookable", classified[0].Status)
	}
}
