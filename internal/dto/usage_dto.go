// DTOs for usage limits and status checking
package dto

// UsageLimit represents the note ceiling of a session
type UsageLimit struct {
	Used      int  `json:"used"`
	Limit     *int `json:"limit"` // null = unlimited
	Remaining *int `json:"remaining"`
	CanCreate bool `json:"can_create"`
	AtLimit   bool `json:"at_limit"`
}

// UsageStatusResponse is returned by GET /api/plan/v1/usage
type UsageStatusResponse struct {
	Plan             string     `json:"plan"`
	Notes            UsageLimit `json:"notes"`
	UpgradeAvailable bool       `json:"upgrade_available"`
}

type SubscriptionDTO struct {
	Plan       string `json:"plan"`
	NotesUsed  int    `json:"notes_used"`
	NotesLimit *int   `json:"notes_limit"`
}
