package domain

// SimulationInputs is the validated input record the engine computes against.
// ErrorRateManual is a fraction in [0,1] here; the HTTP boundary transports it
// on the percentage scale and converts before the engine sees it.
type SimulationInputs struct {
	ScenarioName              string  `json:"scenario_name"`
	MonthlyInvoiceVolume      float64 `json:"monthly_invoice_volume"`
	NumAPStaff                float64 `json:"num_ap_staff"`
	AvgHoursPerInvoice        float64 `json:"avg_hours_per_invoice"`
	HourlyWage                float64 `json:"hourly_wage"`
	ErrorRateManual           float64 `json:"error_rate_manual"`
	ErrorCost                 float64 `json:"error_cost"`
	TimeHorizonMonths         int     `json:"time_horizon_months"`
	OneTimeImplementationCost float64 `json:"one_time_implementation_cost"`
}

// BreakevenPoint is one month of the cumulative net savings projection.
type BreakevenPoint struct {
	Month             int     `json:"month"`
	CumulativeSavings float64 `json:"cumulative_savings"`
}

// SimulationResults is the derived record produced once per input set.
type SimulationResults struct {
	ManualMonthlyCost     float64          `json:"manual_monthly_cost"`
	AutomatedMonthlyCost  float64          `json:"automated_monthly_cost"`
	MonthlySavings        float64          `json:"monthly_savings"`
	TotalSavings          float64          `json:"total_savings"`
	PaybackPeriodMonths   float64          `json:"payback_period_months"`
	ROIPercentage         float64          `json:"roi_percentage"`
	TimeSavedHoursMonthly float64          `json:"time_saved_hours_monthly"`
	ErrorReductionCount   float64          `json:"error_reduction_count"`
	BreakevenAnalysis     []BreakevenPoint `json:"breakeven_analysis"`
}
