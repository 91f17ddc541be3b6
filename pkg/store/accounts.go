package store

import (
	"fmt"

	"saas-notes-be/internal/entity"
	"saas-notes-be/internal/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

type bookEntry struct {
	account      entity.Account
	passwordHash []byte
}

// AccountBook is the static allow-list of demo accounts. It is immutable
// after construction and may be shared between stores.
type AccountBook struct {
	entries map[string]bookEntry
	order   []string
}

// NewAccountBook hashes every password with the given bcrypt cost.
func NewAccountBook(accounts []entity.Account, cost int) (*AccountBook, error) {
	book := &AccountBook{
		entries: make(map[string]bookEntry, len(accounts)),
	}

	for _, acc := range accounts {
		if acc.Email == "" {
			return nil, fmt.Errorf("account without email")
		}
		if _, exists := book.entries[acc.Email]; exists {
			return nil, fmt.Errorf("duplicate account %q", acc.Email)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", acc.Email, err)
		}

		stored := acc
		stored.Password = ""
		book.entries[acc.Email] = bookEntry{account: stored, passwordHash: hash}
		book.order = append(book.order, acc.Email)
	}

	return book, nil
}

// Authenticate returns the account matching email and password.
// The returned account never carries the password.
func (b *AccountBook) Authenticate(email, password string) (entity.Account, error) {
	entry, ok := b.entries[email]
	if !ok {
		return entity.Account{}, apperror.Auth("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)); err != nil {
		return entity.Account{}, apperror.Auth("invalid credentials")
	}

	return entry.account, nil
}

// Find looks an account up by email without checking a password.
func (b *AccountBook) Find(email string) (entity.Account, bool) {
	entry, ok := b.entries[email]
	return entry.account, ok
}

// Accounts lists the allow-list in declaration order, without passwords.
func (b *AccountBook) Accounts() []entity.Account {
	out := make([]entity.Account, 0, len(b.order))
	for _, email := range b.order {
		out = append(out, b.entries[email].account)
	}
	return out
}
