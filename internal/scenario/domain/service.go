package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
)

type Service interface {
	// Create validates the raw request, runs the engine and persists the
	// resulting scenario.
	Create(ctx context.Context, req simulationdomain.SimulateRequest) (*Response, error)
	// List returns all scenarios, newest first.
	List(ctx context.Context) ([]Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	// Delete returns ErrNotFound when no record matches.
	Delete(ctx context.Context, id string) error
}

// Response transports a scenario at the boundary. ErrorRateManual is on the
// percentage scale here.
type Response struct {
	ID                        string                             `json:"id"`
	ScenarioName              string                             `json:"scenario_name"`
	MonthlyInvoiceVolume      float64                            `json:"monthly_invoice_volume"`
	NumAPStaff                float64                            `json:"num_ap_staff"`
	AvgHoursPerInvoice        float64                            `json:"avg_hours_per_invoice"`
	HourlyWage                float64                            `json:"hourly_wage"`
	ErrorRateManual           float64                            `json:"error_rate_manual"`
	ErrorCost                 float64                            `json:"error_cost"`
	TimeHorizonMonths         int                                `json:"time_horizon_months"`
	OneTimeImplementationCost float64                            `json:"one_time_implementation_cost"`
	Results                   simulationdomain.SimulationResults `json:"results"`
	CreatedAt                 time.Time                          `json:"created_at"`
	UpdatedAt                 time.Time                          `json:"updated_at"`
}

var (
	ErrNotFound  = errors.New("not_found")
	ErrInvalidID = errors.New("invalid_id")
)

func ParseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(value)
}
