package service

import (
	"testing"

	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func validRequest() simulationdomain.SimulateRequest {
	return simulationdomain.SimulateRequest{
		ScenarioName:              "Q4 Pilot",
		MonthlyInvoiceVolume:      1000,
		NumAPStaff:                3,
		AvgHoursPerInvoice:        0.5,
		HourlyWage:                25,
		ErrorRateManual:           floatPtr(5),
		ErrorCost:                 floatPtr(50),
		TimeHorizonMonths:         12,
		OneTimeImplementationCost: floatPtr(5000),
	}
}

func TestValidate_ValidRequest(t *testing.T) {
	assert.Empty(t, Validate(validRequest()))
}

func TestValidate_EmptyRequestCollectsAllViolations(t *testing.T) {
	errs := Validate(simulationdomain.SimulateRequest{})

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}

	assert.Equal(t, []string{
		"Scenario name is required",
		"Monthly invoice volume must be greater than 0",
		"Number of AP staff must be greater than 0",
		"Average hours per invoice must be greater than 0",
		"Hourly wage must be greater than 0",
		"Error rate must be between 0 and 100",
		"Error cost must be 0 or greater",
		"Time horizon must be greater than 0 months",
	}, messages)
}

func TestValidate_FieldNames(t *testing.T) {
	errs := Validate(simulationdomain.SimulateRequest{})

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}

	assert.Equal(t, []string{
		"scenario_name",
		"monthly_invoice_volume",
		"num_ap_staff",
		"avg_hours_per_invoice",
		"hourly_wage",
		"error_rate_manual",
		"error_cost",
		"time_horizon_months",
	}, fields)
}

func TestValidate_ErrorRateBounds(t *testing.T) {
	req := validRequest()
	req.ErrorRateManual = floatPtr(0)
	assert.Empty(t, Validate(req))

	req.ErrorRateManual = floatPtr(100)
	assert.Empty(t, Validate(req))

	req.ErrorRateManual = floatPtr(100.5)
	errs := Validate(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "Error rate must be between 0 and 100", errs[0].Message)

	req.ErrorRateManual = floatPtr(-0.1)
	require.Len(t, Validate(req), 1)
}

func TestValidate_WhitespaceOnlyNameRejected(t *testing.T) {
	req := validRequest()
	req.ScenarioName = "   "

	errs := Validate(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "scenario_name", errs[0].Field)
}

func TestValidate_NegativeImplementationCostRejected(t *testing.T) {
	req := validRequest()
	req.OneTimeImplementationCost = floatPtr(-1)

	errs := Validate(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "Implementation cost must be 0 or greater", errs[0].Message)
}

func TestValidate_OmittedImplementationCostAllowed(t *testing.T) {
	req := validRequest()
	req.OneTimeImplementationCost = nil

	assert.Empty(t, Validate(req))
}
