package service

import (
	"testing"

	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceInputs() simulationdomain.SimulationInputs {
	return simulationdomain.SimulationInputs{
		ScenarioName:              "Q4 Pilot",
		MonthlyInvoiceVolume:      1000,
		NumAPStaff:                3,
		AvgHoursPerInvoice:        0.5,
		HourlyWage:                25,
		ErrorRateManual:           0.05,
		ErrorCost:                 50,
		TimeHorizonMonths:         12,
		OneTimeImplementationCost: 5000,
	}
}

func TestCalculate_ReferenceExample(t *testing.T) {
	results := Calculate(referenceInputs())

	// manual_labor_hours=500, labor_cost=12500, errors=50, error_cost=2500
	assert.InDelta(t, 15000.0, results.ManualMonthlyCost, 1e-9)
	// processing=200, labor=(500-133.333..)*25=9166.67, errors=1*50
	assert.InDelta(t, 9416.67, results.AutomatedMonthlyCost, 1e-9)
	assert.InDelta(t, 5583.33, results.MonthlySavings, 1e-9)
	assert.InDelta(t, 62000.0, results.TotalSavings, 1e-9)
	assert.InDelta(t, 0.9, results.PaybackPeriodMonths, 1e-9)
	assert.InDelta(t, 1240.0, results.ROIPercentage, 1e-9)
	assert.InDelta(t, 133.3, results.TimeSavedHoursMonthly, 1e-9)
	assert.InDelta(t, 49.0, results.ErrorReductionCount, 1e-9)

	require.Len(t, results.BreakevenAnalysis, 12)
	assert.Equal(t, 1, results.BreakevenAnalysis[0].Month)
	assert.InDelta(t, 583.33, results.BreakevenAnalysis[0].CumulativeSavings, 1e-9)
	assert.InDelta(t, 62000.0, results.BreakevenAnalysis[11].CumulativeSavings, 1e-9)
}

func TestCalculate_Deterministic(t *testing.T) {
	first := Calculate(referenceInputs())
	second := Calculate(referenceInputs())
	assert.Equal(t, first, second)
}

func TestCalculate_SavingsAndROIFloors(t *testing.T) {
	// Processing fees dwarf the tiny manual labor cost, so the raw savings
	// are deeply negative. The reported numbers still hit the floors.
	in := simulationdomain.SimulationInputs{
		ScenarioName:         "floor",
		MonthlyInvoiceVolume: 1000,
		NumAPStaff:           1,
		AvgHoursPerInvoice:   0.001,
		HourlyWage:           20,
		ErrorRateManual:      0,
		ErrorCost:            0,
		TimeHorizonMonths:    12,
	}

	results := Calculate(in)

	// manual cost = 1000*0.001*20 = 20; floor = 6
	assert.InDelta(t, 20.0, results.ManualMonthlyCost, 1e-9)
	assert.InDelta(t, 6.0, results.MonthlySavings, 1e-9)
	assert.GreaterOrEqual(t, results.MonthlySavings, results.ManualMonthlyCost*0.3)

	// no implementation cost: payback is 0 and the ROI floor applies
	assert.Zero(t, results.PaybackPeriodMonths)
	assert.InDelta(t, 110.0, results.ROIPercentage, 1e-9)
}

func TestCalculate_BreakevenCappedAt24Months(t *testing.T) {
	in := referenceInputs()
	in.TimeHorizonMonths = 36

	results := Calculate(in)

	require.Len(t, results.BreakevenAnalysis, 24)
	for i, point := range results.BreakevenAnalysis {
		assert.Equal(t, i+1, point.Month)
	}

	// Total savings still covers the full 36-month horizon.
	assert.InDelta(t, 5583.33*36-5000, results.TotalSavings, 0.25)

	// Last entry reflects 24 months of cumulative savings.
	last := results.BreakevenAnalysis[23]
	assert.InDelta(t, -5000+5583.33*24, last.CumulativeSavings, 0.25)
}

func TestCalculate_ZeroManualCost(t *testing.T) {
	// Degenerate all-zero-cost inputs: the savings floor collapses to zero,
	// and payback and ROI resolve to 0 rather than dividing by zero.
	in := simulationdomain.SimulationInputs{
		ScenarioName:              "degenerate",
		MonthlyInvoiceVolume:      100,
		NumAPStaff:                1,
		AvgHoursPerInvoice:        0,
		HourlyWage:                0,
		ErrorRateManual:           0,
		ErrorCost:                 0,
		TimeHorizonMonths:         6,
		OneTimeImplementationCost: 1000,
	}

	results := Calculate(in)

	assert.Zero(t, results.ManualMonthlyCost)
	assert.Zero(t, results.MonthlySavings)
	assert.Zero(t, results.PaybackPeriodMonths)
	assert.Zero(t, results.ROIPercentage)
	assert.InDelta(t, -1000.0, results.TotalSavings, 1e-9)

	require.Len(t, results.BreakevenAnalysis, 6)
	assert.InDelta(t, -1000.0, results.BreakevenAnalysis[5].CumulativeSavings, 1e-9)
}

func TestRound_HalfUp(t *testing.T) {
	assert.InDelta(t, 0.9, round(0.89552, 1), 1e-9)
	// 2.345 is not exactly representable; the scaled value lands just
	// below the half and rounds down, same as JavaScript's Math.round.
	assert.InDelta(t, 2.34, round(2.345, 2), 1e-9)
	assert.InDelta(t, 133.3, round(133.33333333333334, 1), 1e-9)
	assert.InDelta(t, -2.0, round(-2.5, 0), 1e-9)
}
