package ai

import (
	"strings"
	"text/template"
)

const systemPrompt = "You are an expert in 3D printing cost estimation. Always answer with a single JSON object."

var estimatesPrompt = template.Must(template.New("estimates").Parse(`Based on the user's description of the 3D print job, provide reasonable estimates for the following cost parameters in JSON format. Use USD as the default currency.

Description: {{.Prompt}}

Cost Parameters:
- materialCost: Estimated cost of the material used for printing.
- printingTimeHours: Estimated printing time in hours.
- electricityCost: Estimated cost of electricity consumption per printing hour.
- laborCost: Estimated labor cost per printing hour.
- printerDepreciation: Estimated depreciation cost of the printer per printing hour.
- postProcessingCost: Estimated post-processing costs.
- profitMargin: Desired profit margin for the print job, as a percentage.
- currency: The currency to use for the cost estimates. Defaults to USD.

When the description allows it you may also include: pieceName, filamentKiloCost,
filamentGrams, printerConsumptionWatts, kwhCost, laborHours, laborCostPerHour,
failureRiskPercentage and urgencySurchargePercentage.

Ensure that the estimates are realistic and consider the context provided in the description.

Output the estimates in JSON format.`))

var optimizationsPrompt = template.Must(template.New("optimizations").Parse(`Analyze the following 3D printing cost estimation details and suggest optimizations to reduce costs and improve profitability. Consider factors like material cost, print time, electricity consumption, labor, printer depreciation, post-processing costs, failure risk, urgency surcharge and desired profit margin.

Answer with a JSON object holding a single string field "optimizationSuggestions".

Cost Estimation Details: {{.CostEstimationDetails}}`))

func render(t *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
