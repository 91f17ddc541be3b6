package store

import (
	"saas-notes-be/internal/entity"
	"saas-notes-be/pkg/plan"
)

// Status is the session lifecycle state of a Store.
type Status string

const (
	StatusLoggedOut Status = "LOGGED_OUT"
	StatusLoggedIn  Status = "LOGGED_IN"
)

// Snapshot is a read-only copy of a Store's state.
type Snapshot struct {
	Status       Status
	User         *entity.User
	Subscription entity.Subscription
	Notes        []entity.Note
	Gate         plan.Decision
}

func (s Snapshot) LoggedIn() bool {
	return s.Status == StatusLoggedIn
}
