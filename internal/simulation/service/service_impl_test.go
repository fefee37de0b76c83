package service

import (
	"context"
	"errors"
	"testing"

	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() simulationdomain.Service {
	return New(Params{Log: zap.NewNop()})
}

func TestSimulate_EchoesPercentageScale(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Simulate(context.Background(), validRequest())
	require.NoError(t, err)

	// Inputs are echoed on the same scale the caller sent them.
	assert.InDelta(t, 5.0, resp.Inputs.ErrorRateManual, 1e-9)
	assert.Equal(t, "Q4 Pilot", resp.Inputs.ScenarioName)
	assert.InDelta(t, 15000.0, resp.Results.ManualMonthlyCost, 1e-9)
}

func TestSimulate_TrimsScenarioName(t *testing.T) {
	svc := newTestService()

	req := validRequest()
	req.ScenarioName = "  Q4 Pilot  "

	resp, err := svc.Simulate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Q4 Pilot", resp.Inputs.ScenarioName)
}

func TestEvaluate_ConvertsRateToFraction(t *testing.T) {
	svc := newTestService()

	eval, err := svc.Evaluate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.InDelta(t, 0.05, eval.Inputs.ErrorRateManual, 1e-9)
}

func TestEvaluate_DefaultsImplementationCost(t *testing.T) {
	svc := newTestService()

	req := validRequest()
	req.OneTimeImplementationCost = nil

	eval, err := svc.Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, eval.Inputs.OneTimeImplementationCost)
	assert.Zero(t, eval.Results.PaybackPeriodMonths)
}

func TestEvaluate_InvalidRequestReturnsValidationErrors(t *testing.T) {
	svc := newTestService()

	_, err := svc.Evaluate(context.Background(), simulationdomain.SimulateRequest{})
	require.Error(t, err)

	var verrs *simulationdomain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs.Errors, 8)
	assert.Equal(t, "scenario_name", verrs.Errors[0].Field)
}
