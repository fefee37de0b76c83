package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/invoiceloop/roisim/internal/clock"
	obsmetrics "github.com/invoiceloop/roisim/internal/observability/metrics"
	scenariodomain "github.com/invoiceloop/roisim/internal/scenario/domain"
	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Repo       scenariodomain.Repository
	Simulation simulationdomain.Service
	Metrics    *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	repo       scenariodomain.Repository
	genID      *snowflake.Node
	clock      clock.Clock
	simulation simulationdomain.Service
	metrics    *obsmetrics.Metrics
}

func New(p Params) scenariodomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("scenario.service"),
		repo:       p.Repo,
		genID:      p.GenID,
		clock:      p.Clock,
		simulation: p.Simulation,
		metrics:    p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req simulationdomain.SimulateRequest) (*scenariodomain.Response, error) {
	eval, err := s.simulation.Evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	scenario := &scenariodomain.Scenario{
		ID:                        s.genID.Generate(),
		ScenarioName:              eval.Inputs.ScenarioName,
		MonthlyInvoiceVolume:      eval.Inputs.MonthlyInvoiceVolume,
		NumAPStaff:                eval.Inputs.NumAPStaff,
		AvgHoursPerInvoice:        eval.Inputs.AvgHoursPerInvoice,
		HourlyWage:                eval.Inputs.HourlyWage,
		ErrorRateManual:           eval.Inputs.ErrorRateManual,
		ErrorCost:                 eval.Inputs.ErrorCost,
		TimeHorizonMonths:         eval.Inputs.TimeHorizonMonths,
		OneTimeImplementationCost: eval.Inputs.OneTimeImplementationCost,
		Results:                   eval.Results,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	if err := s.repo.Insert(ctx, s.db, scenario); err != nil {
		return nil, err
	}

	s.metrics.RecordScenarioCreated()
	s.log.Info("scenario created",
		zap.String("scenario_id", scenario.ID.String()),
		zap.String("scenario_name", scenario.ScenarioName),
	)

	return toResponse(scenario), nil
}

func (s *Service) List(ctx context.Context) ([]scenariodomain.Response, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]scenariodomain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*scenariodomain.Response, error) {
	scenarioID, err := scenariodomain.ParseID(strings.TrimSpace(id))
	if err != nil {
		return nil, scenariodomain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, scenarioID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, scenariodomain.ErrNotFound
	}
	return toResponse(item), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	scenarioID, err := scenariodomain.ParseID(strings.TrimSpace(id))
	if err != nil {
		return scenariodomain.ErrInvalidID
	}

	deleted, err := s.repo.Delete(ctx, s.db, scenarioID)
	if err != nil {
		return err
	}
	if !deleted {
		return scenariodomain.ErrNotFound
	}

	s.metrics.RecordScenarioDeleted()
	s.log.Info("scenario deleted", zap.String("scenario_id", scenarioID.String()))
	return nil
}

func toResponse(scenario *scenariodomain.Scenario) *scenariodomain.Response {
	return &scenariodomain.Response{
		ID:                        scenario.ID.String(),
		ScenarioName:              scenario.ScenarioName,
		MonthlyInvoiceVolume:      scenario.MonthlyInvoiceVolume,
		NumAPStaff:                scenario.NumAPStaff,
		AvgHoursPerInvoice:        scenario.AvgHoursPerInvoice,
		HourlyWage:                scenario.HourlyWage,
		ErrorRateManual:           scenario.ErrorRateManual * 100,
		ErrorCost:                 scenario.ErrorCost,
		TimeHorizonMonths:         scenario.TimeHorizonMonths,
		OneTimeImplementationCost: scenario.OneTimeImplementationCost,
		Results:                   scenario.Results,
		CreatedAt:                 scenario.CreatedAt,
		UpdatedAt:                 scenario.UpdatedAt,
	}
}
