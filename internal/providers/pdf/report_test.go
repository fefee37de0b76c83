package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateROIReport(t *testing.T) {
	provider := New()

	data := ReportData{
		ScenarioName:         "Q4 Pilot",
		PreparedFor:          "cfo@example.com",
		GeneratedAt:          "Jun 1, 2025",
		MonthlySavings:       "$5583.33",
		TotalSavings:         "$62000.00",
		TimeHorizon:          "12 months",
		ROIPercentage:        "1240.0%",
		PaybackPeriod:        "0.9 months",
		ManualMonthlyCost:    "$15000.00",
		AutomatedMonthlyCost: "$9416.67",
		TimeSavedMonthly:     "133.3 hours",
		ErrorsReducedMonthly: "49.0",
		Parameters: []ReportParameter{
			{Label: "Monthly Invoice Volume", Value: "1000"},
			{Label: "Time Horizon", Value: "12 months"},
		},
	}

	doc, err := provider.GenerateROIReport(context.Background(), data)
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestGenerateROIReport_EmptyData(t *testing.T) {
	provider := New()

	doc, err := provider.GenerateROIReport(context.Background(), ReportData{})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
