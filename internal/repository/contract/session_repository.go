package contract

import "saas-notes-be/pkg/store"

// SessionRepository keeps one store per client session.
type SessionRepository interface {
	Save(sessionID string, s *store.Store)
	Get(sessionID string) (*store.Store, bool)
	Delete(sessionID string)
	Count() int
}
