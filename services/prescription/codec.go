// File: services/prescription/codec.go
package prescription

import (
	"strings"

	"cliniq/models"
)

// The legacy portal stores each medicine row as a pipe-joined line:
// name|dosage|frequency|morning|afternoon|evening|meal
// with the three intake flags as "1"/"0". The same encoding is still used for
// the printable sheet, so both directions are kept here.

const medicineFieldCount = 7

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// EncodeMedicines renders rows in the legacy line format, one per line.
func EncodeMedicines(medicines []models.Medicine) string {
	lines := make([]string, 0, len(medicines))
	for _, m := range medicines {
		lines = append(lines, strings.Join([]string{
			m.Name, m.Dosage, m.Frequency,
			flag(m.Morning), flag(m.Afternoon), flag(m.Evening),
			m.Meal,
		}, "|"))
	}
	return strings.Join(lines, "\n")
}

// DecodeMedicines parses the legacy line format. Blank lines and lines with
// the wrong field count are skipped rather than reported, matching the
// tolerant behavior of the portal it replaces.
func DecodeMedicines(encoded string) []models.Medicine {
	var medicines []models.Medicine
	for _, line := range strings.Split(encoded, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != medicineFieldCount {
			continue
		}
		medicines = append(medicines, models.Medicine{
			Name:      parts[0],
			Dosage:    parts[1],
			Frequency: parts[2],
			Morning:   parts[3] == "1",
			Afternoon: parts[4] == "1",
			Evening:   parts[5] == "1",
			Meal:      parts[6],
		})
	}
	return medicines
}
