package repository

import (
	"context"

	"gymgrid/pkg/client"
	"gymgrid/pkg/model"
)

// ClassSource provides the raw class schedule. The production implementation
// talks to the gym API; tests substitute function-backed fakes.
type ClassSource interface {
	FetchClasses(ctx context.Context) ([]model.RawClass, error)
	Healthy(ctx context.Context) bool
}

type gymClassSource struct {
	client *client.GymClient
}

func NewGymClassSource(c *client.GymClient) ClassSource {
	return &gymClassSource{client: c}
}

func (s *gymClassSource) FetchClasses(ctx context.Context) ([]model.RawClass, error) {
	return s.client.FetchClasses(ctx)
}

func (s *gymClassSource) Healthy(ctx context.Context) bool {
	return s.client.Healthy(ctx)
}
