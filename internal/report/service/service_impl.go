package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/invoiceloop/roisim/internal/clock"
	leaddomain "github.com/invoiceloop/roisim/internal/lead/domain"
	obsmetrics "github.com/invoiceloop/roisim/internal/observability/metrics"
	"github.com/invoiceloop/roisim/internal/providers/pdf"
	reportdomain "github.com/invoiceloop/roisim/internal/report/domain"
	scenariodomain "github.com/invoiceloop/roisim/internal/scenario/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Clock     clock.Clock
	Scenarios scenariodomain.Service
	Leads     leaddomain.Service
	PDF       pdf.Provider
	Metrics   *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	log       *zap.Logger
	clock     clock.Clock
	scenarios scenariodomain.Service
	leads     leaddomain.Service
	pdf       pdf.Provider
	metrics   *obsmetrics.Metrics
}

func New(p Params) reportdomain.Service {
	return &Service{
		log:       p.Log.Named("report.service"),
		clock:     p.Clock,
		scenarios: p.Scenarios,
		leads:     p.Leads,
		pdf:       p.PDF,
		metrics:   p.Metrics,
	}
}

func (s *Service) Generate(ctx context.Context, req reportdomain.GenerateRequest) (*reportdomain.Document, error) {
	email := strings.TrimSpace(req.Email)
	if !ValidateEmail(email) {
		return nil, reportdomain.ErrInvalidEmail
	}

	scenarioID := strings.TrimSpace(req.ScenarioID)
	if scenarioID == "" {
		return nil, reportdomain.ErrInvalidScenarioID
	}

	scenario, err := s.scenarios.GetByID(ctx, scenarioID)
	if err != nil {
		return nil, err
	}

	// Lead capture is the gate for report downloads. The lead references the
	// scenario but does not own it.
	if _, err := s.leads.Create(ctx, leaddomain.CreateRequest{
		Email:      email,
		ScenarioID: scenario.ID,
	}); err != nil {
		return nil, err
	}

	data := s.buildReportData(scenario, email)
	doc, err := s.pdf.GenerateROIReport(ctx, data)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordReportGenerated()
	s.log.Info("report generated",
		zap.String("scenario_id", scenario.ID),
		zap.Int("bytes", len(doc)),
	)

	return &reportdomain.Document{
		Filename:    Filename(scenario.ScenarioName),
		ContentType: "application/pdf",
		Data:        doc,
	}, nil
}

func (s *Service) buildReportData(scenario *scenariodomain.Response, email string) pdf.ReportData {
	results := scenario.Results

	return pdf.ReportData{
		ScenarioName: scenario.ScenarioName,
		PreparedFor:  email,
		GeneratedAt:  s.clock.Now().Format("Jan 2, 2006"),

		MonthlySavings: money(results.MonthlySavings),
		TotalSavings:   money(results.TotalSavings),
		TimeHorizon:    fmt.Sprintf("%d months", scenario.TimeHorizonMonths),
		ROIPercentage:  fmt.Sprintf("%.1f%%", results.ROIPercentage),
		PaybackPeriod:  fmt.Sprintf("%.1f months", results.PaybackPeriodMonths),

		ManualMonthlyCost:    money(results.ManualMonthlyCost),
		AutomatedMonthlyCost: money(results.AutomatedMonthlyCost),

		TimeSavedMonthly:     fmt.Sprintf("%.1f hours", results.TimeSavedHoursMonthly),
		ErrorsReducedMonthly: fmt.Sprintf("%.1f", results.ErrorReductionCount),

		Parameters: []pdf.ReportParameter{
			{Label: "Monthly Invoice Volume", Value: fmt.Sprintf("%.0f", scenario.MonthlyInvoiceVolume)},
			{Label: "AP Staff Count", Value: fmt.Sprintf("%.0f", scenario.NumAPStaff)},
			{Label: "Avg. Hours per Invoice", Value: fmt.Sprintf("%g", scenario.AvgHoursPerInvoice)},
			{Label: "Hourly Wage", Value: money(scenario.HourlyWage)},
			{Label: "Manual Error Rate", Value: fmt.Sprintf("%.1f%%", scenario.ErrorRateManual)},
			{Label: "Cost per Error", Value: money(scenario.ErrorCost)},
			{Label: "Implementation Cost", Value: money(scenario.OneTimeImplementationCost)},
			{Label: "Time Horizon", Value: fmt.Sprintf("%d months", scenario.TimeHorizonMonths)},
		},
	}
}

// ValidateEmail applies the syntactic gate for report requests: a single @
// with a dotted domain after it, no whitespace.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Filename derives the suggested download filename from the scenario name,
// replacing whitespace runs with a separator.
func Filename(scenarioName string) string {
	return "roi-report-" + whitespacePattern.ReplaceAllString(scenarioName, "-") + ".pdf"
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
