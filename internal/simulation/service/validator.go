package service

import (
	"strings"

	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
)

// Validate checks a raw request against domain constraints. Every violation is
// collected; the list order follows the field declaration order and is stable.
// The error rate is on the percentage scale (0-100) at this boundary.
func Validate(req simulationdomain.SimulateRequest) []simulationdomain.FieldError {
	var errs []simulationdomain.FieldError

	if strings.TrimSpace(req.ScenarioName) == "" {
		errs = append(errs, simulationdomain.FieldError{
			Field:   "scenario_name",
			Message: "Scenario name is required",
		})
	}

	if req.MonthlyInvoiceVolume <= 0 {
		errs = append(errs, simulationdomain.FieldError{
			Field:   "monthly_invoice_volume",
			Message: "Monthly invoice volume must be greater than 0",
		})
	}

	if req.NumAPStaff <= 0 {
		errs = append(errs, simulationdomain.FieldError{
			Field:   "num_ap_staff",
			Message: "Number of AP staff must be greater than 0",
		})
	}

	if req.AvgHoursPerInvoice <= 0 {
		errs = append(errs, simulationdomain.FieldError{
			Field:   "avg_hours_per_invoice",
			Message: "Average hours per invoice must be greater than 0",
		})
	}

	if req.HourlyWage <= 0 {
		errs = append(errs, simulationdomain.FieldError{
			Field:   "hourly_wage",
			Message: "Hourly wage must be greater than 0",
		})
	}

	if req.ErrorRateManual == nil || *req.ErrorRateManual < 0 || *req.ErrorRateManual > 100 {
		errs = append(errs, simulationdomain.FieldError{
			Field:   "error_rate_manual",
			Message: "Error rate must be between 0 and 100",
		})
	}

	if req.ErrorCost == nil || *req.ErrorCost < 0 {
		errs = append(errs, simulationdomain.FieldError{
			Field:   "error_cost",
			Message: "Error cost must be 0 or greater",
		})
	}

	if req.TimeHorizonMonths <= 0 {
		errs = append(errs, simulationdomain.FieldError{
			Field:   "time_horizon_months",
			Message: "Time horizon must be greater than 0 months",
		})
	}

	if req.OneTimeImplementationCost != nil && *req.OneTimeImplementationCost < 0 {
		errs = append(errs, simulationdomain.FieldError{
			Field:   "one_time_implementation_cost",
			Message: "Implementation cost must be 0 or greater",
		})
	}

	return errs
}
