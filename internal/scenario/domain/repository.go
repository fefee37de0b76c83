package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, scenario *Scenario) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Scenario, error)
	List(ctx context.Context, db *gorm.DB) ([]Scenario, error)
	// Delete reports whether a record existed and was removed.
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error)
}
