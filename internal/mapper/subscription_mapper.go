package mapper

import (
	"saas-notes-be/internal/dto"
	"saas-notes-be/internal/entity"
	"saas-notes-be/pkg/plan"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToDTO(s entity.Subscription) dto.SubscriptionDTO {
	return dto.SubscriptionDTO{
		Plan:       string(s.Plan),
		NotesUsed:  s.NotesUsed,
		NotesLimit: s.NotesLimit,
	}
}

func (m *SubscriptionMapper) ToUsage(s entity.Subscription, d plan.Decision) dto.UsageLimit {
	return dto.UsageLimit{
		Used:      s.NotesUsed,
		Limit:     s.NotesLimit,
		Remaining: d.Remaining,
		CanCreate: d.CanCreate,
		AtLimit:   d.AtLimit,
	}
}
