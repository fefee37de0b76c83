package pdf

import (
	"context"

	"go.uber.org/fx"
)

type Provider interface {
	GenerateROIReport(ctx context.Context, data ReportData) ([]byte, error)
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
