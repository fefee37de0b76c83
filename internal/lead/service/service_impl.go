package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/invoiceloop/roisim/internal/clock"
	leaddomain "github.com/invoiceloop/roisim/internal/lead/domain"
	obsmetrics "github.com/invoiceloop/roisim/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    leaddomain.Repository
	Metrics *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    leaddomain.Repository
	genID   *snowflake.Node
	clock   clock.Clock
	metrics *obsmetrics.Metrics
}

func New(p Params) leaddomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("lead.service"),
		repo:    p.Repo,
		genID:   p.GenID,
		clock:   p.Clock,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req leaddomain.CreateRequest) (*leaddomain.Response, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, leaddomain.ErrInvalidEmail
	}

	var scenarioID *snowflake.ID
	if raw := strings.TrimSpace(req.ScenarioID); raw != "" {
		parsed, err := snowflake.ParseString(raw)
		if err != nil {
			return nil, leaddomain.ErrInvalidScenarioID
		}
		scenarioID = &parsed
	}

	lead := &leaddomain.Lead{
		ID:         s.genID.Generate(),
		Email:      email,
		ScenarioID: scenarioID,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, lead); err != nil {
		return nil, err
	}

	s.metrics.RecordLeadCaptured()
	s.log.Info("lead captured", zap.String("lead_id", lead.ID.String()))

	return toResponse(lead), nil
}

func (s *Service) List(ctx context.Context) ([]leaddomain.Response, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]leaddomain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func toResponse(lead *leaddomain.Lead) *leaddomain.Response {
	resp := &leaddomain.Response{
		ID:        lead.ID.String(),
		Email:     lead.Email,
		CreatedAt: lead.CreatedAt,
	}
	if lead.ScenarioID != nil {
		resp.ScenarioID = lead.ScenarioID.String()
	}
	return resp
}
