package domain

import "context"

type Service interface {
	// Simulate validates, evaluates and echoes the request without persisting.
	Simulate(ctx context.Context, req SimulateRequest) (*SimulateResponse, error)
	// Evaluate validates the request and returns the engine-facing inputs
	// together with their computed results.
	Evaluate(ctx context.Context, req SimulateRequest) (*Evaluation, error)
}

// SimulateRequest is the raw, percentage-scale input record as submitted.
// Pointer fields distinguish omitted values from zero values.
type SimulateRequest struct {
	ScenarioName              string   `json:"scenario_name"`
	MonthlyInvoiceVolume      float64  `json:"monthly_invoice_volume"`
	NumAPStaff                float64  `json:"num_ap_staff"`
	AvgHoursPerInvoice        float64  `json:"avg_hours_per_invoice"`
	HourlyWage                float64  `json:"hourly_wage"`
	ErrorRateManual           *float64 `json:"error_rate_manual"`
	ErrorCost                 *float64 `json:"error_cost"`
	TimeHorizonMonths         int      `json:"time_horizon_months"`
	OneTimeImplementationCost *float64 `json:"one_time_implementation_cost"`
}

// SimulateResponse echoes the submitted inputs (percentage scale) with results.
type SimulateResponse struct {
	Inputs  SimulationInputs  `json:"inputs"`
	Results SimulationResults `json:"results"`
}

type Evaluation struct {
	Inputs  SimulationInputs
	Results SimulationResults
}

// FieldError is a single human-readable input violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors carries every violation found, in field-declaration order.
type ValidationErrors struct {
	Errors []FieldError
}

func (e *ValidationErrors) Error() string { return "validation failed" }

// Messages returns the violation messages in order.
func (e *ValidationErrors) Messages() []string {
	out := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		out = append(out, fe.Message)
	}
	return out
}
