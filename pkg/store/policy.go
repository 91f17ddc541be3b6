package store

import (
	"time"

	"saas-notes-be/internal/entity"
	"saas-notes-be/pkg/plan"
)

// Policy derives the subscription a session starts with.
type Policy struct {
	// ProTenant and ProRole name the single pair that starts on Pro.
	ProTenant string
	ProRole   entity.UserRole
	FreeLimit int
	// WelcomeNote seeds each new session with one note.
	WelcomeNote bool
}

func DefaultPolicy() Policy {
	return Policy{
		ProTenant:   "Globex",
		ProRole:     entity.UserRoleAdmin,
		FreeLimit:   3,
		WelcomeNote: true,
	}
}

func (p Policy) seedCount() int {
	if p.WelcomeNote {
		return 1
	}
	return 0
}

// Baseline is the subscription held while nobody is logged in.
func (p Policy) Baseline() entity.Subscription {
	return entity.Subscription{
		Plan:       entity.PlanFree,
		NotesUsed:  p.seedCount(),
		NotesLimit: entity.LimitOf(plan.EffectiveLimit(&p.FreeLimit)),
	}
}

// SubscriptionFor derives the starting subscription of u.
func (p Policy) SubscriptionFor(u entity.User) entity.Subscription {
	if u.Tenant == p.ProTenant && u.Role == p.ProRole {
		return entity.Subscription{
			Plan:      entity.PlanPro,
			NotesUsed: p.seedCount(),
		}
	}
	return p.Baseline()
}

func (p Policy) seedNotes(id string, at time.Time, tenant string) []entity.Note {
	if !p.WelcomeNote {
		return nil
	}
	return []entity.Note{{
		Id:        id,
		Title:     "Welcome to " + tenant + " Notes",
		Content:   "This is your first note. Create, edit and delete notes within the limits of your subscription plan.",
		CreatedAt: at,
		UpdatedAt: at,
	}}
}
