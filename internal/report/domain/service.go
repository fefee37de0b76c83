package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Generate validates the request, records a lead and renders the
	// referenced scenario into a downloadable document. It never recomputes
	// results.
	Generate(ctx context.Context, req GenerateRequest) (*Document, error)
}

type GenerateRequest struct {
	Email      string `json:"email"`
	ScenarioID string `json:"scenario_id"`
}

// Document is a rendered report plus its suggested download filename.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

var (
	ErrInvalidEmail      = errors.New("invalid_email")
	ErrInvalidScenarioID = errors.New("invalid_scenario_id")
)
