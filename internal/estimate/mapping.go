package estimate

import (
	"strings"

	"github.com/Simplici0/printcost/internal/ai"
	"github.com/Simplici0/printcost/internal/pricing"
)

// InputFromEstimates builds a complete estimate record from a generator answer.
// Flat-rate values are expanded through pricing.FromSimple; detailed pairs
// replace them only when the provider sent both halves of the pair. Anything
// the provider left out is zero, and the currency falls back to USD.
func InputFromEstimates(out ai.EstimatesOutput) pricing.CostInput {
	in := pricing.FromSimple(pricing.SimpleInput{
		MaterialCost:        value(out.MaterialCost),
		PrintingTimeHours:   value(out.PrintingTimeHours),
		ElectricityCost:     value(out.ElectricityCost),
		LaborCost:           value(out.LaborCost),
		PrinterDepreciation: value(out.PrinterDepreciation),
		PostProcessingCost:  value(out.PostProcessingCost),
		ProfitMargin:        value(out.ProfitMargin),
		Currency:            out.Currency,
	})

	in.PieceName = strings.TrimSpace(out.PieceName)

	if out.FilamentKiloCost != nil && out.FilamentGrams != nil {
		in.FilamentKiloCost = *out.FilamentKiloCost
		in.FilamentGrams = *out.FilamentGrams
	}
	if out.PrinterConsumptionWatts != nil && out.KwhCost != nil {
		in.PrinterConsumptionWatts = *out.PrinterConsumptionWatts
		in.KwhCost = *out.KwhCost
	}
	if out.LaborHours != nil && out.LaborCostPerHour != nil {
		in.LaborHours = *out.LaborHours
		in.LaborCostPerHour = *out.LaborCostPerHour
	}
	if out.FailureRiskPercentage != nil {
		in.FailureRiskPercentage = *out.FailureRiskPercentage
	}
	if out.UrgencySurchargePercentage != nil {
		in.UrgencySurchargePercentage = *out.UrgencySurchargePercentage
	}

	return in
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
