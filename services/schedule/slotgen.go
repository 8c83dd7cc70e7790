// File: services/schedule/slotgen.go
package schedule

import (
	"fmt"
	"strings"
	"time"

	"cliniq/models"
)

// DefaultSlotInterval is the slot length used when no interval is configured.
const DefaultSlotInterval = 15 * time.Minute

const clockLayout = "15:04"

// parseClock parses an HH:MM wall-clock string.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t, nil
}

func display(t time.Time) string {
	return strings.ToLower(t.Format("03:04 PM"))
}

// GenerateSlots expands a consulting window into fixed-length slots. Slots are
// emitted from start while the slot end still fits within end. A slot lying
// wholly inside the break window is skipped by jumping to the break end.
// BreakStart and breakEnd may be empty to disable the break.
func GenerateSlots(start, end, breakStart, breakEnd string, interval time.Duration) ([]models.TimeSlot, error) {
	if interval <= 0 {
		interval = DefaultSlotInterval
	}

	cur, err := parseClock(start)
	if err != nil {
		return nil, err
	}
	endT, err := parseClock(end)
	if err != nil {
		return nil, err
	}

	var brStart, brEnd time.Time
	hasBreak := breakStart != "" && breakEnd != ""
	if hasBreak {
		if brStart, err = parseClock(breakStart); err != nil {
			return nil, err
		}
		if brEnd, err = parseClock(breakEnd); err != nil {
			return nil, err
		}
	}

	var slots []models.TimeSlot
	for cur.Before(endT) {
		slotEnd := cur.Add(interval)

		if hasBreak && !cur.Before(brStart) && !slotEnd.After(brEnd) {
			cur = brEnd
			continue
		}

		if !slotEnd.After(endT) {
			slots = append(slots, models.TimeSlot{
				Start:        cur.Format(clockLayout),
				End:          slotEnd.Format(clockLayout),
				DisplayStart: display(cur),
				DisplayEnd:   display(slotEnd),
			})
		}
		cur = slotEnd
	}

	return slots, nil
}
