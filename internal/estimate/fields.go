package estimate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Simplici0/printcost/internal/pricing"
)

// Field names as used by forms and JSON.
const (
	FieldPieceName                  = "pieceName"
	FieldClientName                 = "clientName"
	FieldNotes                      = "notes"
	FieldFilamentKiloCost           = "filamentKiloCost"
	FieldFilamentGrams              = "filamentGrams"
	FieldPrintingTimeHours          = "printingTimeHours"
	FieldPrinterConsumptionWatts    = "printerConsumptionWatts"
	FieldKwhCost                    = "kwhCost"
	FieldLaborHours                 = "laborHours"
	FieldLaborCostPerHour           = "laborCostPerHour"
	FieldPrinterDepreciation        = "printerDepreciation"
	FieldPostProcessingCost         = "postProcessingCost"
	FieldFailureRiskPercentage      = "failureRiskPercentage"
	FieldUrgencySurchargePercentage = "urgencySurchargePercentage"
	FieldProfitMargin               = "profitMargin"
	FieldCurrency                   = "currency"
)

var textFields = map[string]func(*pricing.CostInput) *string{
	FieldPieceName:  func(in *pricing.CostInput) *string { return &in.PieceName },
	FieldClientName: func(in *pricing.CostInput) *string { return &in.ClientName },
	FieldNotes:      func(in *pricing.CostInput) *string { return &in.Notes },
}

var numericFields = map[string]func(*pricing.CostInput) *float64{
	FieldFilamentKiloCost:           func(in *pricing.CostInput) *float64 { return &in.FilamentKiloCost },
	FieldFilamentGrams:              func(in *pricing.CostInput) *float64 { return &in.FilamentGrams },
	FieldPrintingTimeHours:          func(in *pricing.CostInput) *float64 { return &in.PrintingTimeHours },
	FieldPrinterConsumptionWatts:    func(in *pricing.CostInput) *float64 { return &in.PrinterConsumptionWatts },
	FieldKwhCost:                    func(in *pricing.CostInput) *float64 { return &in.KwhCost },
	FieldLaborHours:                 func(in *pricing.CostInput) *float64 { return &in.LaborHours },
	FieldLaborCostPerHour:           func(in *pricing.CostInput) *float64 { return &in.LaborCostPerHour },
	FieldPrinterDepreciation:        func(in *pricing.CostInput) *float64 { return &in.PrinterDepreciation },
	FieldPostProcessingCost:         func(in *pricing.CostInput) *float64 { return &in.PostProcessingCost },
	FieldFailureRiskPercentage:      func(in *pricing.CostInput) *float64 { return &in.FailureRiskPercentage },
	FieldUrgencySurchargePercentage: func(in *pricing.CostInput) *float64 { return &in.UrgencySurchargePercentage },
	FieldProfitMargin:               func(in *pricing.CostInput) *float64 { return &in.ProfitMargin },
}

// FieldNames lists every editable field in form order.
var FieldNames = []string{
	FieldPieceName, FieldClientName, FieldNotes,
	FieldFilamentKiloCost, FieldFilamentGrams, FieldPrintingTimeHours,
	FieldPrinterConsumptionWatts, FieldKwhCost,
	FieldLaborHours, FieldLaborCostPerHour,
	FieldPrinterDepreciation, FieldPostProcessingCost,
	FieldFailureRiskPercentage, FieldUrgencySurchargePercentage, FieldProfitMargin,
	FieldCurrency,
}

// IsField reports whether name is an editable estimate field.
func IsField(name string) bool {
	if name == FieldCurrency {
		return true
	}
	if _, ok := textFields[name]; ok {
		return true
	}
	_, ok := numericFields[name]
	return ok
}

// ParseAmount turns user-typed text into a number. Anything that is not a
// finite number becomes 0. A lone comma is read as the decimal separator.
func ParseAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if strings.Contains(raw, ",") && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func setField(in pricing.CostInput, name, raw string) (pricing.CostInput, error) {
	if name == FieldCurrency {
		in.Currency = pricing.NormalizeCurrency(raw)
		return in, nil
	}
	if ref, ok := textFields[name]; ok {
		*ref(&in) = raw
		return in, nil
	}
	if ref, ok := numericFields[name]; ok {
		*ref(&in) = ParseAmount(raw)
		return in, nil
	}
	return in, fmt.Errorf("%w: %q", ErrUnknownField, name)
}
