package directory

import (
	"math"
	"sort"
	"strings"
	"testing"

	"cliniq/models"
)

func sortedPatients(names ...string) []models.Patient {
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	patients := make([]models.Patient, len(names))
	for i, n := range names {
		patients[i] = models.Patient{ID: "p" + n, Name: n}
	}
	return patients
}

func TestSearchFindsEveryName(t *testing.T) {
	patients := sortedPatients("Asha Rao", "Bhanu Prasad", "Chitra Devi", "Kiran Kumar", "Meena Iyer", "Ravi Teja", "Zoya Khan")

	for i, p := range patients {
		idx, ok := Search(patients, p.Name)
		if !ok {
			t.Fatalf("Search(%q) not found", p.Name)
		}
		if idx != i {
			t.Errorf("Search(%q) = %d, want %d", p.Name, idx, i)
		}
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	patients := sortedPatients("Asha Rao", "Kiran Kumar", "Zoya Khan")

	idx, ok := Search(patients, "kIrAn kUmAr")
	if !ok || patients[idx].Name != "Kiran Kumar" {
		t.Fatalf("Search folded term: got (%d, %v)", idx, ok)
	}
}

func TestSearchMiss(t *testing.T) {
	patients := sortedPatients("Asha Rao", "Kiran Kumar", "Zoya Khan")

	for _, term := range []string{"", "Aaa", "Kiran", "Kiran Kumarr", "Zzz"} {
		if idx, ok := Search(patients, term); ok || idx != -1 {
			t.Errorf("Search(%q) = (%d, %v), want (-1, false)", term, idx, ok)
		}
	}
}

func TestSearchEmpty(t *testing.T) {
	if idx, ok := Search(nil, "anyone"); ok || idx != -1 {
		t.Errorf("Search(nil) = (%d, %v), want (-1, false)", idx, ok)
	}
}

func TestSearchDuplicatesReturnSomeMatch(t *testing.T) {
	patients := sortedPatients("Asha Rao", "Kiran Kumar", "Kiran Kumar", "Kiran Kumar", "Zoya Khan")

	idx, ok := Search(patients, "Kiran Kumar")
	if !ok {
		t.Fatal("duplicate name not found")
	}
	if patients[idx].Name != "Kiran Kumar" {
		t.Errorf("returned index %d names %q", idx, patients[idx].Name)
	}
}

// Each lookup must finish within ceil(log2(n+1)) comparisons.
func TestSearchComparisonBound(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 8, 100, 1000, 4096} {
		bound := int(math.Ceil(math.Log2(float64(n + 1))))

		for target := 0; target < n; target++ {
			calls := 0
			idx, ok := search(n, func(i int) int {
				calls++
				return i - target
			})
			if !ok || idx != target {
				t.Fatalf("n=%d target=%d: got (%d, %v)", n, target, idx, ok)
			}
			if calls > bound {
				t.Fatalf("n=%d target=%d: %d comparisons, bound %d", n, target, calls, bound)
			}
		}

		// Misses stay within the same bound.
		calls := 0
		if _, ok := search(n, func(i int) int { calls++; return -1 }); ok {
			t.Fatalf("n=%d: phantom match", n)
		}
		if calls > bound {
			t.Fatalf("n=%d miss: %d comparisons, bound %d", n, calls, bound)
		}
	}
}
