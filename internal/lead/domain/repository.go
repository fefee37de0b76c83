package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, lead *Lead) error
	List(ctx context.Context, db *gorm.DB) ([]Lead, error)
}
