// FILE: internal/entity/subscription_entity.go
package entity

type PlanTier string

const (
	PlanFree PlanTier = "Free"
	PlanPro  PlanTier = "Pro"
)

// Subscription governs the note ceiling of a session.
// NotesLimit is nil when the plan has no ceiling; a Pro subscription always
// carries a nil limit.
type Subscription struct {
	Plan       PlanTier
	NotesUsed  int
	NotesLimit *int
}

// Limit returns the stored limit, or 0 when there is none.
func (s Subscription) Limit() int {
	if s.NotesLimit == nil {
		return 0
	}
	return *s.NotesLimit
}

// LimitOf returns a pointer to a copy of n, for building subscriptions.
func LimitOf(n int) *int {
	return &n
}
