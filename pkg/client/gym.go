package client

import (
	"context"
	"fmt"
	"time"

	apperrors "gymgrid/pkg/errors"
	"gymgrid/pkg/model"
)

// GymClient is a typed client for the upstream gym API's schedule endpoints.
// Payloads come back loosely shaped; normalization happens downstream.
type GymClient struct {
	httpClient *HttpClient
}

func NewGymClient(baseURL string, timeout time.Duration) *GymClient {
	return &GymClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

// FetchClasses retrieves every group class known to the upstream schedule.
func (c *GymClient) FetchClasses(ctx context.Context) ([]model.RawClass, error) {
	resp, err := c.httpClient.GET(ctx, "/schedule/classes")
	if err != nil {
		return nil, apperrors.Internal("Failed to reach gym API", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(ErrorMessage(resp), resp.StatusCode, nil)
	}

	var classes []model.RawClass
	if err := resp.DecodeJSON(&classes); err != nil {
		return nil, apperrors.Upstream("Gym API did not return a class list", resp.StatusCode, err)
	}
	return classes, nil
}

// FetchMyBookings retrieves the actor's confirmed bookings.
func (c *GymClient) FetchMyBookings(ctx context.Context, actorID int) ([]model.RawBooking, error) {
	resp, err := c.httpClient.GET(ctx, fmt.Sprintf("/schedule/my-bookings/%d", actorID))
	if err != nil {
		return nil, apperrors.Internal("Failed to reach gym API", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(ErrorMessage(resp), resp.StatusCode, nil)
	}

	var bookings []model.RawBooking
	if err := resp.DecodeJSON(&bookings); err != nil {
		return nil, apperrors.Upstream("Gym API did not return a booking list", resp.StatusCode, err)
	}
	return bookings, nil
}

type bookRequest struct {
	ClientID     int `json:"client_id"`
	GroupClassID int `json:"group_class_id"`
}

// BookClass issues the booking mutation. Failure responses carry a
// human-readable detail string which is propagated unchanged.
func (c *GymClient) BookClass(ctx context.Context, actorID, classID int) (*model.BookResult, error) {
	resp, err := c.httpClient.POST(ctx, "/schedule/book", bookRequest{
		ClientID:     actorID,
		GroupClassID: classID,
	})
	if err != nil {
		return nil, apperrors.Internal("Failed to reach gym API", err)
	}
	if !resp.OK() {
		return nil, apperrors.Upstream(ErrorMessage(resp), resp.StatusCode, nil)
	}

	var result model.BookResult
	if err := resp.DecodeJSON(&result); err != nil {
		return nil, apperrors.Upstream("Gym API returned an unreadable booking result", resp.StatusCode, err)
	}
	return &result, nil
}

// CancelBooking removes the actor's booking for the class. The upstream
// endpoint answers with no useful body, so only the failure path carries
// information.
func (c *GymClient) CancelBooking(ctx context.Context, actorID, classID int) error {
	resp, err := c.httpClient.DELETE(ctx, fmt.Sprintf("/schedule/bookings/%d/%d", actorID, classID))
	if err != nil {
		return apperrors.Internal("Failed to reach gym API", err)
	}
	if !resp.OK() {
		return apperrors.Upstream(ErrorMessage(resp), resp.StatusCode, nil)
	}
	return nil
}

// Healthy reports whether the upstream gym API answers at all. Used by the
// readiness probe only.
func (c *GymClient) Healthy(ctx context.Context) bool {
	resp, err := c.httpClient.GET(ctx, "/schedule/classes")
	return err == nil && resp.OK()
}
