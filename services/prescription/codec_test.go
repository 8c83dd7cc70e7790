package prescription

import (
	"reflect"
	"testing"

	"cliniq/models"
)

func TestEncodeMedicines(t *testing.T) {
	medicines := []models.Medicine{
		{Name: "Paracetamol", Dosage: "500mg", Frequency: "1-0-1", Morning: true, Evening: true, Meal: "after"},
		{Name: "Amoxicillin", Dosage: "250mg", Frequency: "1-1-1", Morning: true, Afternoon: true, Evening: true, Meal: "before"},
	}

	got := EncodeMedicines(medicines)
	want := "Paracetamol|500mg|1-0-1|1|0|1|after\nAmoxicillin|250mg|1-1-1|1|1|1|before"
	if got != want {
		t.Errorf("EncodeMedicines =\n%s\nwant\n%s", got, want)
	}
}

func TestDecodeMedicinesRoundTrip(t *testing.T) {
	medicines := []models.Medicine{
		{Name: "Paracetamol", Dosage: "500mg", Frequency: "1-0-1", Morning: true, Evening: true, Meal: "after"},
		{Name: "Cetirizine", Dosage: "10mg", Frequency: "0-0-1", Evening: true, Meal: "before"},
	}

	decoded := DecodeMedicines(EncodeMedicines(medicines))
	if !reflect.DeepEqual(decoded, medicines) {
		t.Errorf("round trip = %+v, want %+v", decoded, medicines)
	}
}

func TestDecodeMedicinesSkipsMalformed(t *testing.T) {
	encoded := "Paracetamol|500mg|1-0-1|1|0|1|after\n" +
		"short|line\n" +
		"\n" +
		"too|many|fields|1|0|1|after|extra\n" +
		"Cetirizine|10mg|0-0-1|0|0|1|before"

	decoded := DecodeMedicines(encoded)
	if len(decoded) != 2 {
		t.Fatalf("got %d medicines, want 2: %+v", len(decoded), decoded)
	}
	if decoded[0].Name != "Paracetamol" || decoded[1].Name != "Cetirizine" {
		t.Errorf("kept rows %q, %q", decoded[0].Name, decoded[1].Name)
	}
}

func TestDecodeMedicinesEmpty(t *testing.T) {
	if got := DecodeMedicines(""); len(got) != 0 {
		t.Errorf("decoding empty input yielded %+v", got)
	}
}
