package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
)

// Scenario is a named, persisted bundle of ROI inputs and their computed
// results. Results are always the engine's output for the stored inputs;
// records are immutable after creation. ErrorRateManual is stored as a
// fraction.
type Scenario struct {
	ID                        snowflake.ID                       `json:"id" gorm:"primaryKey"`
	ScenarioName              string                             `json:"scenario_name" gorm:"type:text;not null"`
	MonthlyInvoiceVolume      float64                            `json:"monthly_invoice_volume" gorm:"not null"`
	NumAPStaff                float64                            `json:"num_ap_staff" gorm:"not null"`
	AvgHoursPerInvoice        float64                            `json:"avg_hours_per_invoice" gorm:"not null"`
	HourlyWage                float64                            `json:"hourly_wage" gorm:"not null"`
	ErrorRateManual           float64                            `json:"error_rate_manual" gorm:"not null"`
	ErrorCost                 float64                            `json:"error_cost" gorm:"not null"`
	TimeHorizonMonths         int                                `json:"time_horizon_months" gorm:"not null"`
	OneTimeImplementationCost float64                            `json:"one_time_implementation_cost" gorm:"not null;default:0"`
	Results                   simulationdomain.SimulationResults `json:"results" gorm:"serializer:json;not null"`
	CreatedAt                 time.Time                          `json:"created_at" gorm:"not null;index:ix_scenarios_created_at,sort:desc"`
	UpdatedAt                 time.Time                          `json:"updated_at" gorm:"not null"`
}

// TableName sets the database table name.
func (Scenario) TableName() string { return "scenarios" }
