package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Lead is a captured email address, optionally tied to a scenario. The
// scenario reference is non-owning: deleting the scenario leaves the lead
// in place.
type Lead struct {
	ID         snowflake.ID  `json:"id" gorm:"primaryKey"`
	Email      string        `json:"email" gorm:"type:text;not null"`
	ScenarioID *snowflake.ID `json:"scenario_id,omitempty" gorm:"index:ix_leads_scenario_id"`
	CreatedAt  time.Time     `json:"created_at" gorm:"not null;index:ix_leads_created_at,sort:desc"`
}

// TableName sets the database table name.
func (Lead) TableName() string { return "leads" }
