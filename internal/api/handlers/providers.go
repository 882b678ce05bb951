package handlers

import (
	"context"

	"evacroute/internal/engine"
	"evacroute/internal/models"
)

// Planner runs a full evacuation planning request.
type Planner interface {
	Plan(ctx context.Context, req engine.Request) (*models.Bundle, error)
}

// StopFinder lists transit stops near a point.
type StopFinder interface {
	Near(ctx context.Context, c models.Coordinate) ([]models.TransitStop, error)
}

// Geocoder resolves a place name to a coordinate.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (models.Coordinate, error)
}
