package repository

import (
	"context"

	"gymgrid/pkg/client"
	"gymgrid/pkg/model"
)

// BookingSource provides the actor's confirmed bookings and the booking
// mutations. Backed by the gym API in production.
type BookingSource interface {
	FetchMyBookings(ctx context.Context, actorID int) ([]model.RawBooking, error)
	Book(ctx context.Context, actorID, classID int) (*model.BookResult, error)
	Cancel(ctx context.Context, actorID, classID int) error
}

type gymBookingSource struct {
	client *client.GymClient
}

func NewGymBookingSource(c *client.GymClient) BookingSource {
	return &gymBookingSource{client: c}
}

func (s *gymBookingSource) FetchMyBookings(ctx context.Context, actorID int) ([]model.RawBooking, error) {
	return s.client.FetchMyBookings(ctx, actorID)
}

func (s *gymBookingSource) Book(ctx context.Context, actorID, classID int) (*model.BookResult, error) {
	return s.client.BookClass(ctx, actorID, classID)
}

func (s *gymBookingSource) Cancel(ctx context.Context, actorID, classID int) error {
	return s.client.CancelBooking(ctx, actorID, classID)
}
