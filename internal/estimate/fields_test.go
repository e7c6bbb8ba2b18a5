package estimate

import "testing"

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"":        0,
		"   ":     0,
		"12":      12,
		" 7.5 ":   7.5,
		"12,5":    12.5,
		"-3":      -3,
		"1e3":     1000,
		"abc":     0,
		"12abc":   0,
		"NaN":     0,
		"Inf":     0,
		"-Inf":    0,
		"1.234,5": 0,
	}
	for raw, want := range cases {
		if got := ParseAmount(raw); got != want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestFieldNamesAreAllKnown(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range FieldNames {
		if !IsField(name) {
			t.Fatalf("field %q is listed but not editable", name)
		}
		if seen[name] {
			t.Fatalf("field %q listed twice", name)
		}
		seen[name] = true
	}
	if len(FieldNames) != len(textFields)+len(numericFields)+1 {
		t.Fatalf("FieldNames has %d entries, want %d", len(FieldNames), len(textFields)+len(numericFields)+1)
	}
	if IsField("description") {
		t.Fatalf("description must not be an estimate field")
	}
}
