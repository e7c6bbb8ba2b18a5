package ai

import (
	"context"
	"fmt"
	"strings"
)

const (
	FlowGenerateEstimates    = "generate_estimates"
	FlowSuggestOptimizations = "suggest_optimizations"
)

// EstimatesInput is the request of the estimate generator.
type EstimatesInput struct {
	Prompt string `json:"prompt"`
}

// EstimatesOutput is the answer of the estimate generator. Numeric fields are
// pointers so that values the provider left out can be told apart from zero.
type EstimatesOutput struct {
	MaterialCost        *float64 `json:"materialCost,omitempty"`
	PrintingTimeHours   *float64 `json:"printingTimeHours,omitempty"`
	ElectricityCost     *float64 `json:"electricityCost,omitempty"`
	LaborCost           *float64 `json:"laborCost,omitempty"`
	PrinterDepreciation *float64 `json:"printerDepreciation,omitempty"`
	PostProcessingCost  *float64 `json:"postProcessingCost,omitempty"`
	ProfitMargin        *float64 `json:"profitMargin,omitempty"`
	Currency            string   `json:"currency,omitempty"`

	PieceName                  string   `json:"pieceName,omitempty"`
	FilamentKiloCost           *float64 `json:"filamentKiloCost,omitempty"`
	FilamentGrams              *float64 `json:"filamentGrams,omitempty"`
	PrinterConsumptionWatts    *float64 `json:"printerConsumptionWatts,omitempty"`
	KwhCost                    *float64 `json:"kwhCost,omitempty"`
	LaborHours                 *float64 `json:"laborHours,omitempty"`
	LaborCostPerHour           *float64 `json:"laborCostPerHour,omitempty"`
	FailureRiskPercentage      *float64 `json:"failureRiskPercentage,omitempty"`
	UrgencySurchargePercentage *float64 `json:"urgencySurchargePercentage,omitempty"`
}

func (o EstimatesOutput) hasNumbers() bool {
	for _, v := range []*float64{
		o.MaterialCost, o.PrintingTimeHours, o.ElectricityCost, o.LaborCost,
		o.PrinterDepreciation, o.PostProcessingCost, o.ProfitMargin,
		o.FilamentKiloCost, o.FilamentGrams, o.PrinterConsumptionWatts, o.KwhCost,
		o.LaborHours, o.LaborCostPerHour, o.FailureRiskPercentage, o.UrgencySurchargePercentage,
	} {
		if v != nil {
			return true
		}
	}
	return false
}

// OptimizationInput is the request of the optimization advisor.
type OptimizationInput struct {
	CostEstimationDetails string `json:"costEstimationDetails"`
}

// OptimizationOutput is the answer of the optimization advisor.
type OptimizationOutput struct {
	OptimizationSuggestions string `json:"optimizationSuggestions"`
}

// GenerateEstimates asks the provider for a best-guess estimate of the job described in in.
func (c *Client) GenerateEstimates(ctx context.Context, in EstimatesInput) (EstimatesOutput, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return EstimatesOutput{}, ErrEmptyPrompt
	}

	prompt, err := render(estimatesPrompt, in)
	if err != nil {
		return EstimatesOutput{}, fmt.Errorf("render estimates prompt: %w", err)
	}

	var out EstimatesOutput
	if err := c.completeJSON(ctx, FlowGenerateEstimates, prompt, &out); err != nil {
		return EstimatesOutput{}, err
	}
	if !out.hasNumbers() {
		return EstimatesOutput{}, fmt.Errorf("%w: no cost parameters", ErrMalformedResponse)
	}
	return out, nil
}

// SuggestOptimizations asks the provider for free-text cost-saving suggestions.
func (c *Client) SuggestOptimizations(ctx context.Context, in OptimizationInput) (OptimizationOutput, error) {
	prompt, err := render(optimizationsPrompt, in)
	if err != nil {
		return OptimizationOutput{}, fmt.Errorf("render optimizations prompt: %w", err)
	}

	var out OptimizationOutput
	if err := c.completeJSON(ctx, FlowSuggestOptimizations, prompt, &out); err != nil {
		return OptimizationOutput{}, err
	}
	if strings.TrimSpace(out.OptimizationSuggestions) == "" {
		return OptimizationOutput{}, fmt.Errorf("%w: empty suggestions", ErrMalformedResponse)
	}
	return out, nil
}
