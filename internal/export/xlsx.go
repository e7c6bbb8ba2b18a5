// Package export renders an estimate as a downloadable spreadsheet.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Simplici0/printcost/internal/pricing"
)

const sheetName = "Estimación"

type line struct {
	label string
	value float64
	money bool
}

// BreakdownXLSX returns an .xlsx workbook with the parameters of in and the
// cost breakdown in costs. Amounts are written as numbers, not text.
func BreakdownXLSX(in pricing.CostInput, costs pricing.CalculatedCosts) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if err := f.SetColWidth(sheetName, "A", "A", 34); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 20); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}

	currency, ok := pricing.LookupCurrency(in.Currency)
	if !ok {
		currency, _ = pricing.LookupCurrency(pricing.DefaultCurrency)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	moneyFmt := moneyNumFmt(currency)
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	row := 1
	put := func(values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
		row++
		return nil
	}
	styleRow := func(r, style int) error {
		return f.SetCellStyle(sheetName, fmt.Sprintf("A%d", r), fmt.Sprintf("B%d", r), style)
	}

	if err := put("Estimación de costos", in.PieceName); err != nil {
		return nil, fmt.Errorf("write title: %w", err)
	}
	if err := styleRow(1, titleStyle); err != nil {
		return nil, fmt.Errorf("style title: %w", err)
	}
	for _, v := range [][2]string{
		{"Cliente", in.ClientName},
		{"Notas", in.Notes},
		{"Moneda", currency.Label},
	} {
		if err := put(v[0], v[1]); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	row++

	sections := []struct {
		title string
		lines []line
	}{
		{"Parámetros", []line{
			{"Costo del filamento por kg", in.FilamentKiloCost, true},
			{"Filamento utilizado (g)", in.FilamentGrams, false},
			{"Tiempo de impresión (h)", in.PrintingTimeHours, false},
			{"Consumo de la impresora (W)", in.PrinterConsumptionWatts, false},
			{"Costo del kWh", in.KwhCost, true},
			{"Horas de mano de obra", in.LaborHours, false},
			{"Costo de mano de obra por hora", in.LaborCostPerHour, true},
			{"Depreciación por hora", in.PrinterDepreciation, true},
			{"Post-procesamiento", in.PostProcessingCost, true},
			{"Riesgo de fallo (%)", in.FailureRiskPercentage, false},
			{"Recargo por urgencia (%)", in.UrgencySurchargePercentage, false},
			{"Margen de ganancia (%)", in.ProfitMargin, false},
		}},
		{"Desglose", []line{
			{"Material", costs.MaterialCost, true},
			{"Electricidad", costs.ElectricityCost, true},
			{"Mano de obra", costs.LaborCost, true},
			{"Desgaste de impresora", costs.PrinterWearCost, true},
			{"Post-procesamiento", costs.PostProcessingCost, true},
			{"Subtotal", costs.Subtotal, true},
			{"Riesgo de fallo", costs.FailureRiskCost, true},
			{"Costo de producción", costs.ProductionCost, true},
			{"Ganancia", costs.Profit, true},
			{"Recargo por urgencia", costs.UrgencyCost, true},
		}},
	}

	for _, section := range sections {
		if err := put(section.title, ""); err != nil {
			return nil, fmt.Errorf("write section %s: %w", section.title, err)
		}
		if err := styleRow(row-1, headerStyle); err != nil {
			return nil, fmt.Errorf("style section %s: %w", section.title, err)
		}
		for _, l := range section.lines {
			if err := put(l.label, l.value); err != nil {
				return nil, fmt.Errorf("write %s: %w", l.label, err)
			}
			if l.money {
				if err := f.SetCellStyle(sheetName, fmt.Sprintf("B%d", row-1), fmt.Sprintf("B%d", row-1), moneyStyle); err != nil {
					return nil, fmt.Errorf("style %s: %w", l.label, err)
				}
			}
		}
		row++
	}

	if err := put("Precio de venta", costs.SellingPrice); err != nil {
		return nil, fmt.Errorf("write selling price: %w", err)
	}
	if err := styleRow(row-1, totalStyle); err != nil {
		return nil, fmt.Errorf("style selling price: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func moneyNumFmt(c pricing.Currency) string {
	if c.Decimals == 0 {
		return `#,##0 "` + c.Symbol + `"`
	}
	return `#,##0.00 "` + c.Symbol + `"`
}
