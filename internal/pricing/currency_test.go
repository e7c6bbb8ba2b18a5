package pricing

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		code  string
		want  string
	}{
		{"small euro amount is not grouped", 1234.5, "EUR", "1234,50 €"},
		{"five digits are grouped", 12345.678, "EUR", "12.345,68 €"},
		{"millions", 1234567.25, "ARS", "1.234.567,25 $"},
		{"yen has no decimals", 12345.678, "JPY", "12.346 ¥"},
		{"small yen amount", 980.4, "JPY", "980 ¥"},
		{"zero", 0, "GBP", "0,00 £"},
		{"negative", -20.5, "USD", "-20,50 US$"},
		{"lowercase code", 7.25, "usd", "7,25 US$"},
		{"unknown code falls back to USD", 3, "XYZ", "3,00 US$"},
		{"NaN renders as zero", math.NaN(), "EUR", "0,00 €"},
		{"beyond int64 stays positive", 1e19, "EUR", "10.000.000.000.000.000.000,00 €"},
		{"beyond int64 negative", -1e20, "JPY", "-100.000.000.000.000.000.000 ¥"},
		{"quadrillion", 1e15, "USD", "1.000.000.000.000.000,00 US$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.value, tt.code); got != tt.want {
				t.Fatalf("FormatMoney(%v, %q) = %q, want %q", tt.value, tt.code, got, tt.want)
			}
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	cases := map[string]string{
		"":      "USD",
		"  ":    "USD",
		"eur":   "EUR",
		" JPY ": "JPY",
		"BTC":   "USD",
		"ARS":   "ARS",
	}
	for in, want := range cases {
		if got := NormalizeCurrency(in); got != want {
			t.Fatalf("NormalizeCurrency(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUrgencyTiersStartAtZero(t *testing.T) {
	if len(UrgencyTiers) == 0 || UrgencyTiers[0].Percent != 0 {
		t.Fatalf("expected first urgency tier to carry no surcharge, got %+v", UrgencyTiers)
	}
	for i := 1; i < len(UrgencyTiers); i++ {
		if UrgencyTiers[i].Percent <= UrgencyTiers[i-1].Percent {
			t.Fatalf("urgency tiers must increase, got %+v", UrgencyTiers)
		}
	}
}
