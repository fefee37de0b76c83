package service

import (
	"context"
	"strings"

	obsmetrics "github.com/invoiceloop/roisim/internal/observability/metrics"
	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	metrics *obsmetrics.Metrics
}

func New(p Params) simulationdomain.Service {
	return &Service{
		log:     p.Log.Named("simulation.service"),
		metrics: p.Metrics,
	}
}

func (s *Service) Simulate(ctx context.Context, req simulationdomain.SimulateRequest) (*simulationdomain.SimulateResponse, error) {
	eval, err := s.Evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	echoed := eval.Inputs
	echoed.ErrorRateManual = echoed.ErrorRateManual * 100

	return &simulationdomain.SimulateResponse{
		Inputs:  echoed,
		Results: eval.Results,
	}, nil
}

func (s *Service) Evaluate(ctx context.Context, req simulationdomain.SimulateRequest) (*simulationdomain.Evaluation, error) {
	_ = ctx

	if errs := Validate(req); len(errs) > 0 {
		return nil, &simulationdomain.ValidationErrors{Errors: errs}
	}

	inputs := toInputs(req)
	results := Calculate(inputs)

	s.metrics.RecordSimulation()
	s.log.Debug("simulation evaluated",
		zap.String("scenario_name", inputs.ScenarioName),
		zap.Int("time_horizon_months", inputs.TimeHorizonMonths),
	)

	return &simulationdomain.Evaluation{Inputs: inputs, Results: results}, nil
}

// toInputs converts an already-validated request to engine inputs, moving the
// error rate from the percentage scale to a fraction and defaulting the
// implementation cost to 0.
func toInputs(req simulationdomain.SimulateRequest) simulationdomain.SimulationInputs {
	implementationCost := 0.0
	if req.OneTimeImplementationCost != nil {
		implementationCost = *req.OneTimeImplementationCost
	}

	return simulationdomain.SimulationInputs{
		ScenarioName:              strings.TrimSpace(req.ScenarioName),
		MonthlyInvoiceVolume:      req.MonthlyInvoiceVolume,
		NumAPStaff:                req.NumAPStaff,
		AvgHoursPerInvoice:        req.AvgHoursPerInvoice,
		HourlyWage:                req.HourlyWage,
		ErrorRateManual:           *req.ErrorRateManual / 100,
		ErrorCost:                 *req.ErrorCost,
		TimeHorizonMonths:         req.TimeHorizonMonths,
		OneTimeImplementationCost: implementationCost,
	}
}
