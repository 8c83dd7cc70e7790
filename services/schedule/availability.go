// File: services/schedule/availability.go
package schedule

import "cliniq/models"

// BookedSet is the set of already-reserved slot start times.
type BookedSet map[string]struct{}

// NewBookedSet builds a BookedSet from raw start-time strings.
func NewBookedSet(starts []string) BookedSet {
	set := make(BookedSet, len(starts))
	for _, s := range starts {
		set[s] = struct{}{}
	}
	return set
}

// Contains reports membership by exact string match; no time-format
// normalization is attempted (a mismatched backend format is a precondition
// violation, not something to repair here).
func (b BookedSet) Contains(start string) bool {
	_, ok := b[start]
	return ok
}

// Classify annotates each slot as booked or bookable, preserving input order.
// A slot is booked iff its start time is a member of the booked set. The
// function is pure: the same inputs always yield the same classification.
func Classify(slots []models.TimeSlot, booked BookedSet) []models.ClassifiedSlot {
	classified := make([]models.ClassifiedSlot, len(slots))
	for i, slot := range slots {
		status := models.SlotBookable
		if booked.Contains(slot.Start) {
			status = models.SlotBooked
		}
		classified[i] = models.ClassifiedSlot{TimeSlot: slot, Status: status}
	}
	return classified
}
