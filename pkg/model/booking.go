package model

// RawBooking is a loosely-typed booking record from the gym API's my-bookings
// endpoint. Like RawClass, field names vary between deployments.
type RawBooking struct {
	BookingID    *int    `json:"booking_id,omitempty"`
	ID           *int    `json:"id,omitempty"`
	GroupClassID *int    `json:"group_class_id,omitempty"`
	ClassName    *string `json:"class_name,omitempty"`
	Name         *string `json:"name,omitempty"`
	Room         *string `json:"room,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
}

// BookRequest is the booking action input. An empty role defaults to client
// at the handler.
type BookRequest struct {
	ActorID int    `json:"actor_id" validate:"required,min=1"`
	ClassID int    `json:"class_id" validate:"required,min=1"`
	Role    string `json:"role,omitempty"`
}

// CancelRequest is the cancellation action input.
type CancelRequest struct {
	ActorID int `json:"actor_id" validate:"required,min=1"`
	ClassID int `json:"class_id" validate:"required,min=1"`
}

// BookResult is the gym API's booking mutation response.
type BookResult struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	BookingID int    `json:"booking_id"`
}

// BookingEntry is one reconciled row of the actor's booking list.
type BookingEntry struct {
	BookingID int    `json:"booking_id"`
	ClassID   int    `json:"class_id"`
	ClassName string `json:"class_name"`
	Room      string `json:"room"`
	Starts    string `json:"starts"`
}
