// Package store is the in-memory state container of one notes session.
//
// A Store cycles between LoggedOut and LoggedIn. Every exported method is one
// atomic transition; the presentation layer reads snapshots and dispatches
// actions against it.
package store

import (
	"strings"
	"sync"
	"time"

	"saas-notes-be/internal/entity"
	"saas-notes-be/internal/pkg/apperror"
	"saas-notes-be/pkg/plan"

	"github.com/google/uuid"
)

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the uuid note id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

type Store struct {
	mu sync.Mutex

	accounts *AccountBook
	policy   Policy
	now      func() time.Time
	newID    func() string

	status       Status
	user         *entity.User
	subscription entity.Subscription
	// notes are kept newest first.
	notes []entity.Note
}

func New(accounts *AccountBook, policy Policy, opts ...Option) *Store {
	s := &Store{
		accounts:     accounts,
		policy:       policy,
		now:          time.Now,
		newID:        uuid.NewString,
		status:       StatusLoggedOut,
		subscription: policy.Baseline(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login checks the credentials against the allow-list and starts a fresh
// session. A failed attempt leaves the current state untouched.
func (s *Store) Login(email, password string) (entity.User, error) {
	account, err := s.accounts.Authenticate(email, password)
	if err != nil {
		return entity.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startSession(account), nil
}

// QuickLogin starts a session for a known demo account without a password.
func (s *Store) QuickLogin(email string) (entity.User, error) {
	account, ok := s.accounts.Find(email)
	if !ok {
		return entity.User{}, apperror.Auth("unknown demo account")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startSession(account), nil
}

func (s *Store) startSession(account entity.Account) entity.User {
	s.reset()

	user := account.User()
	s.user = &user
	s.status = StatusLoggedIn
	s.notes = s.policy.seedNotes(s.newID(), s.now(), user.Tenant)
	s.subscription = s.policy.SubscriptionFor(user)
	s.syncUsage()

	return user
}

// Logout ends the session and restores the Free baseline.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Store) reset() {
	s.status = StatusLoggedOut
	s.user = nil
	s.notes = nil
	s.subscription = s.policy.Baseline()
}

// Upgrade moves the session to Pro. Only an Admin may upgrade; there is no
// way back to Free within the session.
func (s *Store) Upgrade() (entity.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSession(); err != nil {
		return entity.Subscription{}, err
	}
	if !s.user.IsAdmin() {
		return entity.Subscription{}, apperror.Forbidden("only an admin can upgrade the subscription")
	}

	s.subscription.Plan = entity.PlanPro
	s.subscription.NotesLimit = nil
	return s.subscription, nil
}

// CreateNote validates the input, consults the gate and prepends the note.
func (s *Store) CreateNote(title, content string) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSession(); err != nil {
		return entity.Note{}, err
	}

	if err := validateNote(title, content); err != nil {
		return entity.Note{}, err
	}

	decision := plan.EvaluateSubscription(s.subscription, len(s.notes))
	if !decision.CanCreate {
		return entity.Note{}, apperror.Limit(s.effectiveLimit(), len(s.notes))
	}

	now := s.now()
	note := entity.Note{
		Id:        s.newID(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.notes = append([]entity.Note{note}, s.notes...)
	s.syncUsage()

	return note, nil
}

// UpdateNote replaces title and content of an existing note.
// CreatedAt never changes and UpdatedAt never moves backwards.
func (s *Store) UpdateNote(id, title, content string) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSession(); err != nil {
		return entity.Note{}, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return entity.Note{}, apperror.NotFound("note", id)
	}

	note := s.notes[idx]
	note.Title = title
	note.Content = content
	if now := s.now(); now.After(note.UpdatedAt) {
		note.UpdatedAt = now
	}

	s.notes[idx] = note
	return note, nil
}

// DeleteNote removes a note. Deleting an unknown id is a no-op.
func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSession(); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	s.notes = append(s.notes[:idx:idx], s.notes[idx+1:]...)
	s.syncUsage()
	return nil
}

func (s *Store) Note(id string) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireSession(); err != nil {
		return entity.Note{}, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return entity.Note{}, apperror.NotFound("note", id)
	}
	return s.notes[idx], nil
}

// Notes returns a copy of the collection, newest first.
func (s *Store) Notes() []entity.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyNotes()
}

func (s *Store) User() (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return entity.User{}, false
	}
	return *s.user, true
}

func (s *Store) Subscription() entity.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySubscription()
}

func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Gate evaluates the gating rules against the current collection.
func (s *Store) Gate() plan.Decision {
	s.mu.Lock()
	defer s.mu.Unlock()
	return plan.EvaluateSubscription(s.subscription, len(s.notes))
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Status:       s.status,
		Subscription: s.copySubscription(),
		Notes:        s.copyNotes(),
		Gate:         plan.EvaluateSubscription(s.subscription, len(s.notes)),
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func (s *Store) requireSession() error {
	if s.status != StatusLoggedIn || s.user == nil {
		return apperror.Auth("not logged in")
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.notes {
		if s.notes[i].Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) syncUsage() {
	s.subscription.NotesUsed = len(s.notes)
}

func (s *Store) effectiveLimit() int {
	return plan.EffectiveLimit(s.subscription.NotesLimit)
}

func (s *Store) copyNotes() []entity.Note {
	out := make([]entity.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

func (s *Store) copySubscription() entity.Subscription {
	sub := s.subscription
	if sub.NotesLimit != nil {
		sub.NotesLimit = entity.LimitOf(*sub.NotesLimit)
	}
	return sub
}

func validateNote(title, content string) error {
	missing := map[string]interface{}{}
	if strings.TrimSpace(title) == "" {
		missing["title"] = "required"
	}
	if strings.TrimSpace(content) == "" {
		missing["content"] = "required"
	}
	if len(missing) > 0 {
		return apperror.Validation("please provide both title and content", missing)
	}
	return nil
}
