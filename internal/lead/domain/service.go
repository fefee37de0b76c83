package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	// Create records an email capture. ScenarioID is optional.
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	// List returns all leads, newest first.
	List(ctx context.Context) ([]Response, error)
}

type CreateRequest struct {
	Email      string `json:"email"`
	ScenarioID string `json:"scenario_id,omitempty"`
}

type Response struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	ScenarioID string    `json:"scenario_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

var (
	ErrInvalidEmail      = errors.New("invalid_email")
	ErrInvalidScenarioID = errors.New("invalid_scenario_id")
)
