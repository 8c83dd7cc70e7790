// File: services/prescription/form.go
package prescription

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"cliniq/models"
)

// RowForm is the ordered list of medicine rows behind the dynamic
// prescription form. Rows are appended and removed explicitly and the final
// medicine list is derived from the row order, never from ad-hoc templating.
type RowForm struct {
	rows []models.Medicine
}

// NewRowForm starts a form with one empty row, the state the portal opens in.
func NewRowForm() *RowForm {
	return &RowForm{rows: []models.Medicine{{Meal: "after"}}}
}

// AddRow appends an empty row and returns the new row count.
func (f *RowForm) AddRow() int {
	f.rows = append(f.rows, models.Medicine{Meal: "after"})
	return len(f.rows)
}

// RemoveRow deletes the row at index, keeping the remaining order. The last
// row cannot be removed.
func (f *RowForm) RemoveRow(index int) error {
	if index < 0 || index >= len(f.rows) {
		return fmt.Errorf("row %d out of range", index)
	}
	if len(f.rows) == 1 {
		return fmt.Errorf("cannot remove the last row")
	}
	f.rows = append(f.rows[:index], f.rows[index+1:]...)
	return nil
}

// SetRow replaces the row at index.
func (f *RowForm) SetRow(index int, m models.Medicine) error {
	if index < 0 || index >= len(f.rows) {
		return fmt.Errorf("row %d out of range", index)
	}
	f.rows[index] = m
	return nil
}

// Len returns the current row count, the value submitted as medicine_count.
func (f *RowForm) Len() int {
	return len(f.rows)
}

// Medicines returns the completed rows in order. Rows missing any of name,
// dosage or frequency are treated as unfilled and dropped.
func (f *RowForm) Medicines() []models.Medicine {
	var out []models.Medicine
	for _, m := range f.rows {
		if m.Name == "" || m.Dosage == "" || m.Frequency == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ParseLegacyForm decodes the portal's form submission: a hidden
// medicine_count field and 1-based indexed fields medicine_name_{i},
// medicine_dosage_{i}, medicine_frequency_{i}, the three intake checkboxes
// and medicine_meal_{i}. Incomplete rows are skipped.
func ParseLegacyForm(values url.Values) []models.Medicine {
	count, err := strconv.Atoi(values.Get("medicine_count"))
	if err != nil || count < 1 {
		count = 1
	}

	var medicines []models.Medicine
	for i := 1; i <= count; i++ {
		suffix := strconv.Itoa(i)
		name := strings.TrimSpace(values.Get("medicine_name_" + suffix))
		dosage := strings.TrimSpace(values.Get("medicine_dosage_" + suffix))
		frequency := strings.TrimSpace(values.Get("medicine_frequency_" + suffix))
		if name == "" || dosage == "" || frequency == "" {
			continue
		}

		meal := values.Get("medicine_meal_" + suffix)
		if meal == "" {
			meal = "after"
		}
		medicines = append(medicines, models.Medicine{
			Name:      name,
			Dosage:    dosage,
			Frequency: frequency,
			Morning:   values.Get("medicine_morning_"+suffix) != "",
			Afternoon: values.Get("medicine_afternoon_"+suffix) != "",
			Evening:   values.Get("medicine_evening_"+suffix) != "",
			Meal:      meal,
		})
	}
	return medicines
}
