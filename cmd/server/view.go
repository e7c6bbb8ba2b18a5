package main

import (
	"math"
	"strconv"

	"github.com/Simplici0/printcost/internal/estimate"
	"github.com/Simplici0/printcost/internal/pricing"
)

type formField struct {
	Name  string
	Label string
	Value string
	Text  bool
}

type breakdownRow struct {
	Key     string
	Label   string
	Display string
	Total   bool
}

type homeViewData struct {
	Fields       []formField
	Input        pricing.CostInput
	Breakdown    []breakdownRow
	Currencies   []pricing.Currency
	UrgencyTiers []pricing.UrgencyTier
	Generating   bool
	Optimizing   bool
	Suggestions  string
	Notices      []estimate.Notice
	Archived     bool
}

type snapshot struct {
	Input       pricing.CostInput       `json:"input"`
	Costs       pricing.CalculatedCosts `json:"calculatedCosts"`
	Display     map[string]string       `json:"display"`
	Generating  bool                    `json:"generating"`
	Optimizing  bool                    `json:"optimizing"`
	Suggestions string                  `json:"suggestions"`
	Notices     []estimate.Notice       `json:"notices"`
	QuoteID     int64                   `json:"quoteId,omitempty"`
}

var fieldLabels = map[string]string{
	estimate.FieldPieceName:                  "Nombre de la pieza",
	estimate.FieldClientName:                 "Cliente",
	estimate.FieldNotes:                      "Notas",
	estimate.FieldFilamentKiloCost:           "Costo del filamento por kg",
	estimate.FieldFilamentGrams:              "Filamento utilizado (g)",
	estimate.FieldPrintingTimeHours:          "Tiempo de impresión (h)",
	estimate.FieldPrinterConsumptionWatts:    "Consumo de la impresora (W)",
	estimate.FieldKwhCost:                    "Costo del kWh",
	estimate.FieldLaborHours:                 "Horas de mano de obra",
	estimate.FieldLaborCostPerHour:           "Costo de mano de obra por hora",
	estimate.FieldPrinterDepreciation:        "Depreciación de la impresora por hora",
	estimate.FieldPostProcessingCost:         "Costo de post-procesamiento",
	estimate.FieldFailureRiskPercentage:      "Riesgo de fallo (%)",
	estimate.FieldUrgencySurchargePercentage: "Recargo por urgencia (%)",
	estimate.FieldProfitMargin:               "Margen de ganancia (%)",
}

func formFields(in pricing.CostInput) []formField {
	text := map[string]string{
		estimate.FieldPieceName:  in.PieceName,
		estimate.FieldClientName: in.ClientName,
		estimate.FieldNotes:      in.Notes,
	}
	numbers := map[string]float64{
		estimate.FieldFilamentKiloCost:           in.FilamentKiloCost,
		estimate.FieldFilamentGrams:              in.FilamentGrams,
		estimate.FieldPrintingTimeHours:          in.PrintingTimeHours,
		estimate.FieldPrinterConsumptionWatts:    in.PrinterConsumptionWatts,
		estimate.FieldKwhCost:                    in.KwhCost,
		estimate.FieldLaborHours:                 in.LaborHours,
		estimate.FieldLaborCostPerHour:           in.LaborCostPerHour,
		estimate.FieldPrinterDepreciation:        in.PrinterDepreciation,
		estimate.FieldPostProcessingCost:         in.PostProcessingCost,
		estimate.FieldFailureRiskPercentage:      in.FailureRiskPercentage,
		estimate.FieldUrgencySurchargePercentage: in.UrgencySurchargePercentage,
		estimate.FieldProfitMargin:               in.ProfitMargin,
	}

	fields := make([]formField, 0, len(estimate.FieldNames))
	for _, name := range estimate.FieldNames {
		if v, ok := text[name]; ok {
			fields = append(fields, formField{Name: name, Label: fieldLabels[name], Value: v, Text: true})
			continue
		}
		if v, ok := numbers[name]; ok {
			fields = append(fields, formField{Name: name, Label: fieldLabels[name], Value: strconv.FormatFloat(v, 'f', -1, 64)})
		}
	}
	return fields
}

func breakdown(costs pricing.CalculatedCosts, currency string) []breakdownRow {
	money := func(v float64) string { return pricing.FormatMoney(v, currency) }
	return []breakdownRow{
		{Key: "materialCost", Label: "Material", Display: money(costs.MaterialCost)},
		{Key: "electricityCost", Label: "Electricidad", Display: money(costs.ElectricityCost)},
		{Key: "laborCost", Label: "Mano de obra", Display: money(costs.LaborCost)},
		{Key: "printerWearCost", Label: "Desgaste de impresora", Display: money(costs.PrinterWearCost)},
		{Key: "postProcessingCost", Label: "Post-procesamiento", Display: money(costs.PostProcessingCost)},
		{Key: "subtotal", Label: "Subtotal", Display: money(costs.Subtotal)},
		{Key: "failureRiskCost", Label: "Riesgo de fallo", Display: money(costs.FailureRiskCost)},
		{Key: "productionCost", Label: "Costo de producción", Display: money(costs.ProductionCost)},
		{Key: "profit", Label: "Ganancia", Display: money(costs.Profit)},
		{Key: "urgencyCost", Label: "Recargo por urgencia", Display: money(costs.UrgencyCost)},
		{Key: "sellingPrice", Label: "Precio de venta", Display: money(costs.SellingPrice), Total: true},
	}
}

func newSnapshot(view estimate.View, notices []estimate.Notice) snapshot {
	display := make(map[string]string)
	for _, row := range breakdown(view.Costs, view.Input.Currency) {
		display[row.Key] = row.Display
	}
	if notices == nil {
		notices = []estimate.Notice{}
	}
	return snapshot{
		Input:       view.Input,
		Costs:       finiteCosts(view.Costs),
		Display:     display,
		Generating:  view.Generating,
		Optimizing:  view.Optimizing,
		Suggestions: view.Suggestions,
		Notices:     notices,
	}
}

// finiteCosts replaces overflowed values with 0, matching what the
// breakdown displays, so the snapshot stays encodable as JSON.
func finiteCosts(c pricing.CalculatedCosts) pricing.CalculatedCosts {
	for _, v := range []*float64{
		&c.MaterialCost, &c.ElectricityCost, &c.LaborCost, &c.PrinterWearCost,
		&c.PostProcessingCost, &c.Subtotal, &c.FailureRiskCost, &c.ProductionCost,
		&c.Profit, &c.UrgencyCost, &c.SellingPrice,
	} {
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			*v = 0
		}
	}
	return c
}
