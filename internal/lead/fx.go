package lead

import (
	"github.com/invoiceloop/roisim/internal/lead/repository"
	"github.com/invoiceloop/roisim/internal/lead/service"
	"go.uber.org/fx"
)

var Module = fx.Module("lead.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
