package quotes

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Simplici0/printcost/internal/pricing"
)

// Text renders q as plain text ready to paste into a message to the client.
// Amounts come from the stored snapshot.
func Text(q Quote) string {
	money := func(v float64) string { return pricing.FormatMoney(v, q.Input.Currency) }
	number := func(v float64) string { return humanize.FtoaWithDigits(v, 2) }

	var b strings.Builder
	title := strings.TrimSpace(q.Input.PieceName)
	if title == "" {
		title = "Sin nombre"
	}
	fmt.Fprintf(&b, "Cotización #%d: %s\n", q.ID, title)
	fmt.Fprintf(&b, "Fecha: %s\n", q.CreatedAt)
	if client := strings.TrimSpace(q.Input.ClientName); client != "" {
		fmt.Fprintf(&b, "Cliente: %s\n", client)
	}
	fmt.Fprintf(&b, "Total: %s\n", money(q.Costs.SellingPrice))

	b.WriteString("\nDesglose:\n")
	fmt.Fprintf(&b, "- Material: %s\n", money(q.Costs.MaterialCost))
	fmt.Fprintf(&b, "- Electricidad: %s\n", money(q.Costs.ElectricityCost))
	fmt.Fprintf(&b, "- Mano de obra: %s\n", money(q.Costs.LaborCost))
	fmt.Fprintf(&b, "- Desgaste de impresora: %s\n", money(q.Costs.PrinterWearCost))
	fmt.Fprintf(&b, "- Post-procesamiento: %s\n", money(q.Costs.PostProcessingCost))
	fmt.Fprintf(&b, "- Subtotal: %s\n", money(q.Costs.Subtotal))
	fmt.Fprintf(&b, "- Riesgo de fallo: %s\n", money(q.Costs.FailureRiskCost))
	fmt.Fprintf(&b, "- Costo de producción: %s\n", money(q.Costs.ProductionCost))
	fmt.Fprintf(&b, "- Ganancia: %s\n", money(q.Costs.Profit))
	fmt.Fprintf(&b, "- Recargo por urgencia: %s\n", money(q.Costs.UrgencyCost))

	b.WriteString("\nSupuestos:\n")
	fmt.Fprintf(&b, "- Filamento: %s g a %s por kg\n", number(q.Input.FilamentGrams), money(q.Input.FilamentKiloCost))
	fmt.Fprintf(&b, "- Impresión: %s h a %s W\n", number(q.Input.PrintingTimeHours), number(q.Input.PrinterConsumptionWatts))
	fmt.Fprintf(&b, "- Mano de obra: %s h\n", number(q.Input.LaborHours))
	fmt.Fprintf(&b, "- Riesgo de fallo: %s %%\n", number(q.Input.FailureRiskPercentage))
	fmt.Fprintf(&b, "- Urgencia: %s %%\n", number(q.Input.UrgencySurchargePercentage))
	fmt.Fprintf(&b, "- Margen: %s %%\n", number(q.Input.ProfitMargin))

	if notes := strings.TrimSpace(q.Input.Notes); notes != "" {
		fmt.Fprintf(&b, "\nNotas: %s\n", notes)
	}
	return b.String()
}
