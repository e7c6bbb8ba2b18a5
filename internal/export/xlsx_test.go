package export

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Simplici0/printcost/internal/pricing"
)

func TestBreakdownXLSXWritesNumericBreakdown(t *testing.T) {
	in := pricing.DefaultInput()
	in.PieceName = "Engranaje"
	in.ClientName = "Taller Ruiz"
	costs := pricing.Calculate(in)

	data, err := BreakdownXLSX(in, costs)
	if err != nil {
		t.Fatalf("BreakdownXLSX returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	if got := f.GetSheetName(0); got != sheetName {
		t.Fatalf("sheet = %q, want %q", got, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}

	values := map[string]string{}
	for _, r := range rows {
		if len(r) >= 2 {
			values[r[0]] = r[1]
		}
	}

	if values["Estimación de costos"] != "Engranaje" || values["Cliente"] != "Taller Ruiz" {
		t.Fatalf("unexpected header rows: %v", rows[:3])
	}
	if values["Moneda"] != "ARS - Peso argentino" {
		t.Fatalf("currency label = %q", values["Moneda"])
	}

	checks := map[string]float64{
		"Filamento utilizado (g)": 100,
		"Material":                costs.MaterialCost,
		"Subtotal":                costs.Subtotal,
		"Costo de producción":     costs.ProductionCost,
		"Precio de venta":         costs.SellingPrice,
	}
	for label, want := range checks {
		raw, ok := values[label]
		if !ok {
			t.Fatalf("row %q not found", label)
		}
		got, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			t.Fatalf("row %q is not numeric: %q", label, raw)
		}
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("row %q = %v, want %v", label, got, want)
		}
	}
}

func TestBreakdownXLSXUnknownCurrencyFallsBack(t *testing.T) {
	in := pricing.DefaultInput()
	in.Currency = "XYZ"

	data, err := BreakdownXLSX(in, pricing.Calculate(in))
	if err != nil {
		t.Fatalf("BreakdownXLSX returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	got, err := f.GetCellValue(sheetName, "B4")
	if err != nil {
		t.Fatalf("read currency cell: %v", err)
	}
	if got != "USD - Dólar estadounidense" {
		t.Fatalf("currency label = %q", got)
	}
}
