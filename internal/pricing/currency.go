package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// DefaultCurrency is used when a currency is missing or not supported.
	DefaultCurrency = "USD"
	// DefaultFormCurrency is the currency of a freshly loaded form.
	DefaultFormCurrency = "ARS"
)

// Currency describes a currency the form can price in.
type Currency struct {
	Code     string
	Label    string
	Symbol   string
	Decimals int
}

// Currencies is the fixed set of selectable currencies, in display order.
var Currencies = []Currency{
	{Code: "USD", Label: "USD - Dólar estadounidense", Symbol: "US$", Decimals: 2},
	{Code: "EUR", Label: "EUR - Euro", Symbol: "€", Decimals: 2},
	{Code: "GBP", Label: "GBP - Libra esterlina", Symbol: "£", Decimals: 2},
	{Code: "JPY", Label: "JPY - Yen japonés", Symbol: "¥", Decimals: 0},
	{Code: "ARS", Label: "ARS - Peso argentino", Symbol: "$", Decimals: 2},
}

// LookupCurrency returns the currency for code, ignoring case and surrounding spaces.
func LookupCurrency(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// NormalizeCurrency returns the canonical code for code, or DefaultCurrency
// when code is empty or unsupported.
func NormalizeCurrency(code string) string {
	if c, ok := LookupCurrency(code); ok {
		return c.Code
	}
	return DefaultCurrency
}

// FormatMoney renders value the way es-ES displays currency amounts:
// comma decimals, dot thousands from five integer digits on, symbol last.
func FormatMoney(value float64, code string) string {
	c, ok := LookupCurrency(code)
	if !ok {
		c, _ = LookupCurrency(DefaultCurrency)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}

	// humanize goes through int64 for the integer part.
	if math.Abs(value) >= 1<<63 {
		return formatLarge(value, c.Decimals) + " " + c.Symbol
	}
	return humanize.FormatFloat(moneyFormat(value, c.Decimals), value) + " " + c.Symbol
}

func formatLarge(value float64, decimals int) string {
	s := strconv.FormatFloat(math.Abs(value), 'f', decimals, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if value < 0 {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte(',')
		b.WriteString(frac)
	}
	return b.String()
}

func moneyFormat(value float64, decimals int) string {
	grouped := math.Abs(value) >= 10000
	switch {
	case grouped && decimals == 0:
		return "#.###."
	case grouped:
		return "#.###," + strings.Repeat("#", decimals)
	case decimals == 0:
		return "####."
	default:
		return "####," + strings.Repeat("#", decimals)
	}
}

// UrgencyTier is one of the selectable urgency surcharge levels.
type UrgencyTier struct {
	Key     string
	Label   string
	Percent float64
}

// UrgencyTiers is the fixed set of urgency surcharges offered by the form.
var UrgencyTiers = []UrgencyTier{
	{Key: "normal", Label: "Normal", Percent: 0},
	{Key: "priority", Label: "Prioritario", Percent: 15},
	{Key: "urgent", Label: "Urgente", Percent: 30},
	{Key: "express", Label: "Express (24 h)", Percent: 50},
}
