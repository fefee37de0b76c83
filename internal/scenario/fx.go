package scenario

import (
	"github.com/invoiceloop/roisim/internal/scenario/repository"
	"github.com/invoiceloop/roisim/internal/scenario/service"
	"go.uber.org/fx"
)

var Module = fx.Module("scenario.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
