package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	scenariodomain "github.com/invoiceloop/roisim/internal/scenario/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() scenariodomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, scenario *scenariodomain.Scenario) error {
	return db.WithContext(ctx).Create(scenario).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*scenariodomain.Scenario, error) {
	var scenario scenariodomain.Scenario
	err := db.WithContext(ctx).First(&scenario, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]scenariodomain.Scenario, error) {
	var scenarios []scenariodomain.Scenario
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&scenarios).Error
	if err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error) {
	res := db.WithContext(ctx).Delete(&scenariodomain.Scenario{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
