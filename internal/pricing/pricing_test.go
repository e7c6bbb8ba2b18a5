package pricing

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCalculate_ReferenceScenario(t *testing.T) {
	in := CostInput{
		FilamentKiloCost:           25000,
		FilamentGrams:              100,
		PrintingTimeHours:          5,
		PrinterConsumptionWatts:    350,
		KwhCost:                    45,
		LaborHours:                 1,
		LaborCostPerHour:           2000,
		PrinterDepreciation:        500,
		PostProcessingCost:         5000,
		FailureRiskPercentage:      5,
		ProfitMargin:               20,
		UrgencySurchargePercentage: 0,
	}

	got := Calculate(in)

	nearlyEqual(t, "materialCost", got.MaterialCost, 2500)
	nearlyEqual(t, "electricityCost", got.ElectricityCost, 78.75)
	nearlyEqual(t, "laborCost", got.LaborCost, 2000)
	nearlyEqual(t, "printerWearCost", got.PrinterWearCost, 2500)
	nearlyEqual(t, "postProcessingCost", got.PostProcessingCost, 5000)
	nearlyEqual(t, "subtotal", got.Subtotal, 10078.75)
	nearlyEqual(t, "failureRiskCost", got.FailureRiskCost, 503.9375)
	nearlyEqual(t, "productionCost", got.ProductionCost, 10582.6875)
	nearlyEqual(t, "profit", got.Profit, 2116.5375)
	nearlyEqual(t, "urgencyCost", got.UrgencyCost, 0)
	nearlyEqual(t, "sellingPrice", got.SellingPrice, 12699.225)
}

func TestCalculate_DefaultInputMatchesReferenceScenario(t *testing.T) {
	got := Calculate(DefaultInput())
	nearlyEqual(t, "sellingPrice", got.SellingPrice, 12699.225)
}

func TestCalculate_ZeroInputYieldsZeroOutput(t *testing.T) {
	got := Calculate(CostInput{})
	if got != (CalculatedCosts{}) {
		t.Fatalf("expected all-zero costs, got %+v", got)
	}
}

func TestCalculate_IsDeterministic(t *testing.T) {
	in := DefaultInput()
	in.UrgencySurchargePercentage = 30
	in.KwhCost = 0.1 + 0.2

	first := Calculate(in)
	second := Calculate(in)
	if first != second {
		t.Fatalf("expected bit-identical results, got %+v and %+v", first, second)
	}
}

func TestCalculate_Identities(t *testing.T) {
	inputs := []CostInput{
		DefaultInput(),
		{FilamentKiloCost: 19.99, FilamentGrams: 37, PrintingTimeHours: 2.25, PrinterConsumptionWatts: 120, KwhCost: 0.31, LaborHours: 0.5, LaborCostPerHour: 18, PrinterDepreciation: 0.4, PostProcessingCost: 3, FailureRiskPercentage: 12, UrgencySurchargePercentage: 15, ProfitMargin: 35},
		{FilamentKiloCost: 30, FilamentGrams: 1200, PrintingTimeHours: 41, PrinterConsumptionWatts: 500, KwhCost: 0.22, FailureRiskPercentage: 100, UrgencySurchargePercentage: 50, ProfitMargin: 0},
	}

	for i, in := range inputs {
		got := Calculate(in)

		sum := got.MaterialCost + got.ElectricityCost + got.LaborCost + got.PrinterWearCost + got.PostProcessingCost
		if got.Subtotal != sum {
			t.Fatalf("case %d: subtotal = %v, want %v", i, got.Subtotal, sum)
		}
		nearlyEqual(t, "productionCost", got.ProductionCost, got.Subtotal*(1+in.FailureRiskPercentage/100))
		nearlyEqual(t, "sellingPrice", got.SellingPrice,
			got.ProductionCost*(1+in.ProfitMargin/100)+got.ProductionCost*(in.UrgencySurchargePercentage/100))
	}
}

func TestCalculate_UrgencyAppliesToProductionCost(t *testing.T) {
	in := CostInput{PostProcessingCost: 100, FailureRiskPercentage: 10, ProfitMargin: 20, UrgencySurchargePercentage: 30}

	got := Calculate(in)

	nearlyEqual(t, "productionCost", got.ProductionCost, 110)
	nearlyEqual(t, "profit", got.Profit, 22)
	nearlyEqual(t, "urgencyCost", got.UrgencyCost, 33)
	nearlyEqual(t, "sellingPrice", got.SellingPrice, 165)
}

func TestFromSimple_MatchesFlatRateFormula(t *testing.T) {
	simple := SimpleInput{
		MaterialCost:        10,
		PrintingTimeHours:   5,
		ElectricityCost:     0.15,
		LaborCost:           20,
		PrinterDepreciation: 0.5,
		PostProcessingCost:  5,
		ProfitMargin:        20,
		Currency:            "eur",
	}

	in := FromSimple(simple)
	got := Calculate(in)

	timeBased := simple.PrintingTimeHours * (simple.ElectricityCost + simple.LaborCost + simple.PrinterDepreciation)
	production := simple.MaterialCost + timeBased + simple.PostProcessingCost

	nearlyEqual(t, "materialCost", got.MaterialCost, simple.MaterialCost)
	nearlyEqual(t, "productionCost", got.ProductionCost, production)
	nearlyEqual(t, "sellingPrice", got.SellingPrice, production*1.2)
	if in.Currency != "EUR" {
		t.Fatalf("currency = %q, want %q", in.Currency, "EUR")
	}
	if in.FailureRiskPercentage != 0 || in.UrgencySurchargePercentage != 0 {
		t.Fatalf("expected zero risk and urgency, got %+v", in)
	}
}
