// File: services/schedule/view.go
package schedule

import (
	"sync"

	"cliniq/models"
)

// AvailabilityView serializes overlapping availability fetches for one
// scheduling session. Each fetch calls Begin for a generation number and
// Apply with it when the response arrives; only the response matching the
// latest issued generation is applied, so a slow earlier fetch can never
// overwrite the result of a later one.
type AvailabilityView struct {
	mu      sync.Mutex
	gen     uint64
	current []models.ClassifiedSlot
	lastErr string
}

// Begin registers a new fetch and returns its generation. Any fetch begun
// earlier becomes stale immediately.
func (v *AvailabilityView) Begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	return v.gen
}

// Apply installs the classified result for the fetch identified by gen.
// It reports whether the result was applied; stale generations are ignored.
func (v *AvailabilityView) Apply(gen uint64, classified []models.ClassifiedSlot) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return false
	}
	v.current = classified
	v.lastErr = ""
	return true
}

// Fail installs a backend-signaled error for the fetch identified by gen.
// The slot listing is cleared; stale generations are ignored.
func (v *AvailabilityView) Fail(gen uint64, errMsg string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return false
	}
	v.current = nil
	v.lastErr = errMsg
	return true
}

// Current returns the applied classification and the last error message.
func (v *AvailabilityView) Current() ([]models.ClassifiedSlot, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current, v.lastErr
}
