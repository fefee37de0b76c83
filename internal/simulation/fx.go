package simulation

import (
	"github.com/invoiceloop/roisim/internal/simulation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("simulation.service",
	fx.Provide(service.New),
)
