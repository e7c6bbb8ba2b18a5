package pricing

// CostInput holds the user-editable parameters of a single print estimate.
type CostInput struct {
	PieceName  string `json:"pieceName"`
	ClientName string `json:"clientName"`
	Notes      string `json:"notes"`

	FilamentKiloCost  float64 `json:"filamentKiloCost"`
	FilamentGrams     float64 `json:"filamentGrams"`
	PrintingTimeHours float64 `json:"printingTimeHours"`

	PrinterConsumptionWatts float64 `json:"printerConsumptionWatts"`
	KwhCost                 float64 `json:"kwhCost"`

	LaborHours       float64 `json:"laborHours"`
	LaborCostPerHour float64 `json:"laborCostPerHour"`

	PrinterDepreciation float64 `json:"printerDepreciation"`
	PostProcessingCost  float64 `json:"postProcessingCost"`

	FailureRiskPercentage      float64 `json:"failureRiskPercentage"`
	UrgencySurchargePercentage float64 `json:"urgencySurchargePercentage"`
	ProfitMargin               float64 `json:"profitMargin"`

	Currency string `json:"currency"`
}

// CalculatedCosts contains every derived value of a pricing calculation.
type CalculatedCosts struct {
	MaterialCost       float64 `json:"materialCost"`
	ElectricityCost    float64 `json:"electricityCost"`
	LaborCost          float64 `json:"laborCost"`
	PrinterWearCost    float64 `json:"printerWearCost"`
	PostProcessingCost float64 `json:"postProcessingCost"`
	Subtotal           float64 `json:"subtotal"`
	FailureRiskCost    float64 `json:"failureRiskCost"`
	ProductionCost     float64 `json:"productionCost"`
	Profit             float64 `json:"profit"`
	UrgencyCost        float64 `json:"urgencyCost"`
	SellingPrice       float64 `json:"sellingPrice"`
}

// DefaultInput returns the values a fresh or reset estimate starts from.
func DefaultInput() CostInput {
	return CostInput{
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
		UrgencySurchargePercentage: 0,
		ProfitMargin:               20,
		Currency:                   DefaultFormCurrency,
	}
}

// Calculate computes the cost breakdown and selling price for in.
// Values are never rounded here; rounding belongs to FormatMoney.
func Calculate(in CostInput) CalculatedCosts {
	materialCost := (in.FilamentKiloCost / 1000.0) * in.FilamentGrams
	electricityCost := (in.PrinterConsumptionWatts * in.PrintingTimeHours / 1000.0) * in.KwhCost
	laborCost := in.LaborHours * in.LaborCostPerHour
	printerWearCost := in.PrintingTimeHours * in.PrinterDepreciation

	subtotal := materialCost + electricityCost + laborCost + printerWearCost + in.PostProcessingCost
	failureRiskCost := subtotal * (in.FailureRiskPercentage / 100.0)
	productionCost := subtotal + failureRiskCost

	profit := productionCost * (in.ProfitMargin / 100.0)
	urgencyCost := productionCost * (in.UrgencySurchargePercentage / 100.0)

	return CalculatedCosts{
		MaterialCost:       materialCost,
		ElectricityCost:    electricityCost,
		LaborCost:          laborCost,
		PrinterWearCost:    printerWearCost,
		PostProcessingCost: in.PostProcessingCost,
		Subtotal:           subtotal,
		FailureRiskCost:    failureRiskCost,
		ProductionCost:     productionCost,
		Profit:             profit,
		UrgencyCost:        urgencyCost,
		SellingPrice:       productionCost + profit + urgencyCost,
	}
}

// SimpleInput is the flat-rate estimate shape: material as a total, and
// electricity, labor and depreciation as rates per printing hour.
type SimpleInput struct {
	MaterialCost        float64
	PrintingTimeHours   float64
	ElectricityCost     float64
	LaborCost           float64
	PrinterDepreciation float64
	PostProcessingCost  float64
	ProfitMargin        float64
	Currency            string
}

// FromSimple expresses a flat-rate estimate as a CostInput whose calculation
// yields the same production cost and selling price. Risk and urgency are zero.
func FromSimple(s SimpleInput) CostInput {
	return CostInput{
		FilamentKiloCost:        s.MaterialCost,
		FilamentGrams:           1000,
		PrintingTimeHours:       s.PrintingTimeHours,
		PrinterConsumptionWatts: 1000,
		KwhCost:                 s.ElectricityCost,
		LaborHours:              s.PrintingTimeHours,
		LaborCostPerHour:        s.LaborCost,
		PrinterDepreciation:     s.PrinterDepreciation,
		PostProcessingCost:      s.PostProcessingCost,
		ProfitMargin:            s.ProfitMargin,
		Currency:                NormalizeCurrency(s.Currency),
	}
}
