// File: services/schedule/picker.go
package schedule

import (
	"errors"

	"cliniq/models"
)

var (
	// ErrSlotUnknown means the start time is not among the offered slots.
	ErrSlotUnknown = errors.New("no such slot")
	// ErrSlotBooked means the slot exists but is already reserved.
	ErrSlotBooked = errors.New("slot is already booked")
)

// SlotPicker tracks the single selected slot for one scheduling session.
// Selecting a slot replaces any previous selection, so at most one start time
// is ever held.
type SlotPicker struct {
	slots    map[string]models.SlotStatus
	selected string
}

// NewSlotPicker builds a picker over a classified slot listing.
func NewSlotPicker(classified []models.ClassifiedSlot) *SlotPicker {
	slots := make(map[string]models.SlotStatus, len(classified))
	for _, cs := range classified {
		slots[cs.Start] = cs.Status
	}
	return &SlotPicker{slots: slots}
}

// Select records start as the chosen slot. Booked and unknown starts are
// rejected and leave any existing selection untouched.
func (p *SlotPicker) Select(start string) error {
	status, ok := p.slots[start]
	if !ok {
		return ErrSlotUnknown
	}
	if status == models.SlotBooked {
		return ErrSlotBooked
	}
	p.selected = start
	return nil
}

// Selected returns the chosen start time, or "" if nothing is selected.
func (p *SlotPicker) Selected() string {
	return p.selected
}

// Clear drops the current selection.
func (p *SlotPicker) Clear() {
	p.selected = ""
}
