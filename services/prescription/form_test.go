package prescription

import (
	"net/url"
	"testing"

	"cliniq/models"
)

func TestRowFormStartsWithOneRow(t *testing.T) {
	f := NewRowForm()
	if f.Len() != 1 {
		t.Fatalf("new form has %d rows, want 1", f.Len())
	}
	if got := f.Medicines(); len(got) != 0 {
		t.Errorf("empty row reported as medicine: %+v", got)
	}
}

func TestRowFormAddAndSet(t *testing.T) {
	f := NewRowForm()
	f.AddRow()
	if f.Len() != 2 {
		t.Fatalf("after AddRow: %d rows, want 2", f.Len())
	}

	if err := f.SetRow(0, models.Medicine{Name: "Paracetamol", Dosage: "500mg", Frequency: "1-0-1", Meal: "after"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetRow(1, models.Medicine{Name: "Cetirizine", Dosage: "10mg", Frequency: "0-0-1", Meal: "before"}); err != nil {
		t.Fatal(err)
	}

	medicines := f.Medicines()
	if len(medicines) != 2 {
		t.Fatalf("got %d medicines, want 2", len(medicines))
	}
	// Row order carries through.
	if medicines[0].Name != "Paracetamol" || medicines[1].Name != "Cetirizine" {
		t.Errorf("order = %q, %q", medicines[0].Name, medicines[1].Name)
	}
}

func TestRowFormRemove(t *testing.T) {
	f := NewRowForm()
	f.AddRow()
	f.AddRow()
	_ = f.SetRow(0, models.Medicine{Name: "A", Dosage: "1", Frequency: "1", Meal: "after"})
	_ = f.SetRow(1, models.Medicine{Name: "B", Dosage: "1", Frequency: "1", Meal: "after"})
	_ = f.SetRow(2, models.Medicine{Name: "C", Dosage: "1", Frequency: "1", Meal: "after"})

	if err := f.RemoveRow(1); err != nil {
		t.Fatal(err)
	}
	medicines := f.Medicines()
	if len(medicines) != 2 || medicines[0].Name != "A" || medicines[1].Name != "C" {
		t.Errorf("after remove: %+v", medicines)
	}
}

func TestRowFormCannotRemoveLastRow(t *testing.T) {
	f := NewRowForm()
	if err := f.RemoveRow(0); err == nil {
		t.Error("removing the only row succeeded")
	}
	if err := f.RemoveRow(5); err == nil {
		t.Error("removing an out-of-range row succeeded")
	}
}

func TestRowFormDropsIncompleteRows(t *testing.T) {
	f := NewRowForm()
	f.AddRow()
	_ = f.SetRow(0, models.Medicine{Name: "Paracetamol", Dosage: "500mg", Frequency: "1-0-1", Meal: "after"})
	_ = f.SetRow(1, models.Medicine{Name: "NoDosage", Frequency: "1-0-1", Meal: "after"})

	medicines := f.Medicines()
	if len(medicines) != 1 || medicines[0].Name != "Paracetamol" {
		t.Errorf("incomplete row kept: %+v", medicines)
	}
}

func TestParseLegacyForm(t *testing.T) {
	values := url.Values{}
	values.Set("medicine_count", "3")
	values.Set("medicine_name_1", "Paracetamol")
	values.Set("medicine_dosage_1", "500mg")
	values.Set("medicine_frequency_1", "1-0-1")
	values.Set("medicine_morning_1", "on")
	values.Set("medicine_evening_1", "on")
	values.Set("medicine_meal_1", "before")
	// Row 2 has no name and is skipped.
	values.Set("medicine_dosage_2", "10mg")
	values.Set("medicine_frequency_2", "0-0-1")
	values.Set("medicine_name_3", "Cetirizine")
	values.Set("medicine_dosage_3", "10mg")
	values.Set("medicine_frequency_3", "0-0-1")
	values.Set("medicine_evening_3", "on")

	medicines := ParseLegacyForm(values)
	if len(medicines) != 2 {
		t.Fatalf("got %d medicines, want 2: %+v", len(medicines), medicines)
	}

	first := medicines[0]
	if first.Name != "Paracetamol" || !first.Morning || first.Afternoon || !first.Evening || first.Meal != "before" {
		t.Errorf("first row = %+v", first)
	}
	// Meal defaults to after when unset.
	if medicines[1].Meal != "after" {
		t.Errorf("meal default = %q, want after", medicines[1].Meal)
	}
}

func TestParseLegacyFormBadCount(t *testing.T) {
	values := url.Values{}
	values.Set("medicine_count", "banana")
	values.Set("medicine_name_1", "Paracetamol")
	values.Set("medicine_dosage_1", "500mg")
	values.Set("medicine_frequency_1", "1-0-1")

	medicines := ParseLegacyForm(values)
	if len(medicines) != 1 {
		t.Fatalf("got %d medicines, want 1", len(medicines))
	}
}
