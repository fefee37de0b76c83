package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/invoiceloop/roisim/internal/config"
	"github.com/invoiceloop/roisim/internal/lead"
	leaddomain "github.com/invoiceloop/roisim/internal/lead/domain"
	"github.com/invoiceloop/roisim/internal/observability"
	obsmiddleware "github.com/invoiceloop/roisim/internal/observability/logger"
	obsmetrics "github.com/invoiceloop/roisim/internal/observability/metrics"
	obstracing "github.com/invoiceloop/roisim/internal/observability/tracing"
	"github.com/invoiceloop/roisim/internal/providers/pdf"
	"github.com/invoiceloop/roisim/internal/report"
	reportdomain "github.com/invoiceloop/roisim/internal/report/domain"
	"github.com/invoiceloop/roisim/internal/scenario"
	scenariodomain "github.com/invoiceloop/roisim/internal/scenario/domain"
	"github.com/invoiceloop/roisim/internal/simulation"
	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	simulation.Module,
	scenario.Module,
	lead.Module,
	pdf.Module,
	report.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	simulationSvc simulationdomain.Service
	scenarioSvc   scenariodomain.Service
	leadSvc       leaddomain.Service
	reportSvc     reportdomain.Service
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	SimulationSvc simulationdomain.Service
	ScenarioSvc   scenariodomain.Service
	LeadSvc       leaddomain.Service
	ReportSvc     reportdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		simulationSvc: p.SimulationSvc,
		scenarioSvc:   p.ScenarioSvc,
		leadSvc:       p.LeadSvc,
		reportSvc:     p.ReportSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/simulate", s.Simulate)

	api.POST("/scenarios", s.CreateScenario)
	api.GET("/scenarios", s.ListScenarios)
	api.GET("/scenarios/:id", s.GetScenarioByID)
	api.DELETE("/scenarios/:id", s.DeleteScenario)

	api.POST("/report/generate", s.GenerateReport)

	api.GET("/leads", s.ListLeads)
}
