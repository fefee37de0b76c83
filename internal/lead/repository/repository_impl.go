package repository

import (
	"context"

	leaddomain "github.com/invoiceloop/roisim/internal/lead/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() leaddomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, lead *leaddomain.Lead) error {
	return db.WithContext(ctx).Create(lead).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]leaddomain.Lead, error) {
	var leads []leaddomain.Lead
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}
