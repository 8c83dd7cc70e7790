package schedule

import (
	"sync"
	"testing"

	"cliniq/models"
)

func classifiedWith(start string) []models.ClassifiedSlot {
	return []models.ClassifiedSlot{
		{TimeSlot: models.TimeSlot{Start: start}, Status: models.SlotBookable},
	}
}

func TestViewAppliesLatestGeneration(t *testing.T) {
	var v AvailabilityView

	old := v.Begin()
	latest := v.Begin()

	if !v.Apply(latest, classifiedWith("10:00")) {
		t.Fatal("latest generation rejected")
	}
	// The slower, earlier fetch must not overwrite the newer result.
	if v.Apply(old, classifiedWith("09:00")) {
		t.Fatal("stale generation applied")
	}

	current, errMsg := v.Current()
	if errMsg != "" {
		t.Fatalf("unexpected error %q", errMsg)
	}
	if len(current) != 1 || current[0].Start != "10:00" {
		t.Errorf("current = %v, want the 10:00 listing", current)
	}
}

func TestViewStaleFailureIgnored(t *testing.T) {
	var v AvailabilityView

	old := v.Begin()
	latest := v.Begin()
	if !v.Apply(latest, classifiedWith("10:00")) {
		t.Fatal("latest generation rejected")
	}

	if v.Fail(old, MsgNotAvailable) {
		t.Fatal("stale failure applied")
	}
	if current, errMsg := v.Current(); errMsg != "" || len(current) != 1 {
		t.Errorf("stale failure disturbed state: (%v, %q)", current, errMsg)
	}
}

func TestViewFailureClearsListing(t *testing.T) {
	var v AvailabilityView

	gen := v.Begin()
	if !v.Apply(gen, classifiedWith("09:00")) {
		t.Fatal("apply rejected")
	}

	gen = v.Begin()
	if !v.Fail(gen, MsgNotAvailable) {
		t.Fatal("current failure rejected")
	}

	current, errMsg := v.Current()
	if errMsg != MsgNotAvailable {
		t.Errorf("errMsg = %q, want %q", errMsg, MsgNotAvailable)
	}
	if len(current) != 0 {
		t.Errorf("listing not cleared on failure: %v", current)
	}
}

func TestViewConcurrentFetches(t *testing.T) {
	var v AvailabilityView
	var wg sync.WaitGroup

	gens := make([]uint64, 50)
	for i := range gens {
		gens[i] = v.Begin()
	}
	final := v.Begin()

	for _, g := range gens {
		wg.Add(1)
		go func(g uint64) {
			defer wg.Done()
			v.Apply(g, classifiedWith("09:00"))
		}(g)
	}
	wg.Wait()

	if !v.Apply(final, classifiedWith("17:00")) {
		t.Fatal("final generation rejected")
	}
	current, _ := v.Current()
	if len(current) != 1 || current[0].Start != "17:00" {
		t.Errorf("final listing lost: %v", current)
	}
}
