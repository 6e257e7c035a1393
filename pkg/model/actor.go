package model

const (
	RoleClient  = "client"
	RoleTrainer = "trainer"
	RoleManager = "manager"
)

// Actor is the current session identity, threaded explicitly into every
// engine entry point. A nil actor renders the timetable but disables booking.
type Actor struct {
	ID   int    `json:"id"`
	Role string `json:"role"`
}

// CanBook reports whether the actor may issue booking actions. Only
// client-role actors with a usable id qualify; staff roles get a read-only
// grid.
func (a *Actor) CanBook() bool {
	return a != nil && a.ID > 0 && a.Role == RoleClient
}
