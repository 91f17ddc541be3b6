package memory

import (
	"time"

	"saas-notes-be/internal/repository/contract"
	"saas-notes-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository expires each session ttl after it was saved (reads do
// not extend it) and purges expired ones every cleanup interval.
func NewSessionRepository(ttl, cleanup time.Duration) contract.SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, cleanup),
	}
}

func (r *SessionRepository) Save(sessionID string, s *store.Store) {
	r.cache.Set(sessionID, s, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Store, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Store), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
