// File: services/directory/search.go
package directory

import (
	"strings"

	"cliniq/models"
)

// Search performs a binary search over patients for a case-insensitive exact
// name match and returns the matching index, or -1 and false when no record
// matches. The caller must supply the sequence sorted ascending by
// case-insensitive name; the routine does not verify this and unsorted input
// yields undefined results. When duplicate names exist, which of them is
// returned depends on the comparison path.
func Search(patients []models.Patient, term string) (int, bool) {
	folded := strings.ToLower(term)
	return search(len(patients), func(i int) int {
		return strings.Compare(strings.ToLower(patients[i].Name), folded)
	})
}

// search is the bare halving loop. cmp reports the ordering of element i
// against the target. At most one cmp call is made per halving step.
func search(n int, cmp func(i int) int) (int, bool) {
	low, high := 0, n-1
	for low <= high {
		mid := (low + high) / 2
		switch c := cmp(mid); {
		case c == 0:
			return mid, true
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1, false
}
