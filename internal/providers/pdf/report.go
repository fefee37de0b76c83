package pdf

import (
	"context"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ReportData carries pre-formatted strings; all computation and formatting
// happens before the document layer.
type ReportData struct {
	ScenarioName string
	PreparedFor  string
	GeneratedAt  string

	MonthlySavings string
	TotalSavings   string
	TimeHorizon    string
	ROIPercentage  string
	PaybackPeriod  string

	ManualMonthlyCost    string
	AutomatedMonthlyCost string

	TimeSavedMonthly     string
	ErrorsReducedMonthly string

	Parameters []ReportParameter
}

type ReportParameter struct {
	Label string
	Value string
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateROIReport(ctx context.Context, data ReportData) ([]byte, error) {
	_ = ctx

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Invoicing ROI Analysis", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(10,
		text.NewCol(12, data.ScenarioName, props.Text{
			Size:  12,
			Align: align.Center,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, "Prepared for "+data.PreparedFor+" on "+data.GeneratedAt, props.Text{
			Size:  9,
			Align: align.Center,
		}),
	)

	sectionTitle(m, "Executive Summary")
	metricRow(m, "Monthly Savings", data.MonthlySavings)
	metricRow(m, "Total Savings ("+data.TimeHorizon+")", data.TotalSavings)
	metricRow(m, "ROI", data.ROIPercentage)
	metricRow(m, "Payback Period", data.PaybackPeriod)

	sectionTitle(m, "Cost Comparison")
	metricRow(m, "Manual Process (Monthly)", data.ManualMonthlyCost)
	metricRow(m, "Automated Process (Monthly)", data.AutomatedMonthlyCost)

	sectionTitle(m, "Efficiency Gains")
	metricRow(m, "Time Saved (Monthly)", data.TimeSavedMonthly)
	metricRow(m, "Errors Reduced (Monthly)", data.ErrorsReducedMonthly)

	sectionTitle(m, "Scenario Parameters")
	for _, param := range data.Parameters {
		m.AddRow(8,
			text.NewCol(6, param.Label, props.Text{Size: 9}),
			text.NewCol(6, param.Value, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(14, col.New(12))
	m.AddRow(8,
		text.NewCol(12, "Projections are estimates based on the submitted scenario parameters.", props.Text{
			Size:  8,
			Align: align.Center,
		}),
	)
	m.AddRow(6,
		text.NewCol(12, "Invoicing ROI Simulator", props.Text{
			Size:  8,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func sectionTitle(m core.Maroto, title string) {
	m.AddRow(12,
		text.NewCol(12, title, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Top:   4,
		}),
	)
}

func metricRow(m core.Maroto, label, value string) {
	m.AddRow(9,
		text.NewCol(6, label, props.Text{Size: 10}),
		text.NewCol(6, value, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)
}
