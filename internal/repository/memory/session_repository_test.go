package memory

import (
	"testing"
	"time"

	"saas-notes-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	book, err := store.NewAccountBook(nil, bcrypt.MinCost)
	require.NoError(t, err)
	return store.New(book, store.DefaultPolicy())
}

func TestSessionRepositorySaveGetDelete(t *testing.T) {
	repo := NewSessionRepository(time.Hour, time.Minute)
	s := newStore(t)

	repo.Save("sid-1", s)
	got, ok := repo.Get("sid-1")
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, repo.Count())

	repo.Delete("sid-1")
	_, ok = repo.Get("sid-1")
	assert.False(t, ok)
}

func TestSessionRepositoryExpires(t *testing.T) {
	repo := NewSessionRepository(10*time.Millisecond, time.Hour)
	repo.Save("sid-1", newStore(t))

	time.Sleep(30 * time.Millisecond)

	_, ok := repo.Get("sid-1")
	assert.False(t, ok)
}

func TestSessionRepositoryReadsDoNotExtendExpiry(t *testing.T) {
	repo := NewSessionRepository(60*time.Millisecond, time.Hour)
	repo.Save("sid-1", newStore(t))

	time.Sleep(30 * time.Millisecond)
	_, ok := repo.Get("sid-1")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = repo.Get("sid-1")
	assert.False(t, ok)
}
