// Package plan holds the subscription-tier gating rules for note creation.
package plan

import "saas-notes-be/internal/entity"

// DefaultFreeLimit applies to a Free subscription that carries no limit.
const DefaultFreeLimit = 3

// Decision is the outcome of evaluating a subscription against a note count.
type Decision struct {
	CanCreate bool
	AtLimit   bool
	// Remaining is nil when the plan has no ceiling.
	Remaining *int
}

// Evaluate decides whether a new note may be created.
// The limit is only consulted for the Free plan.
func Evaluate(tier entity.PlanTier, count int, limit *int) Decision {
	if tier == entity.PlanPro {
		return Decision{CanCreate: true}
	}

	effective := EffectiveLimit(limit)
	atLimit := count >= effective
	remaining := effective - count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		CanCreate: !atLimit,
		AtLimit:   atLimit,
		Remaining: &remaining,
	}
}

// EffectiveLimit resolves a stored Free limit. A missing or non-positive
// limit falls back to DefaultFreeLimit.
func EffectiveLimit(limit *int) int {
	if limit == nil || *limit <= 0 {
		return DefaultFreeLimit
	}
	return *limit
}

// EvaluateSubscription evaluates sub against the actual note count.
func EvaluateSubscription(sub entity.Subscription, count int) Decision {
	return Evaluate(sub.Plan, count, sub.NotesLimit)
}

// UpgradeAvailable reports whether role may move sub to Pro.
func UpgradeAvailable(sub entity.Subscription, role entity.UserRole) bool {
	return sub.Plan == entity.PlanFree && role == entity.UserRoleAdmin
}
