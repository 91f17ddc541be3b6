// FILE: internal/service/plan_service.go
// Service for usage limit checking
package service

import (
	"context"

	"saas-notes-be/internal/dto"
	"saas-notes-be/internal/mapper"
	"saas-notes-be/internal/pkg/apperror"
	"saas-notes-be/internal/repository/contract"
	"saas-notes-be/pkg/plan"
)

type PlanService interface {
	GetUsageStatus(ctx context.Context, sessionID string) (*dto.UsageStatusResponse, error)
}

type planService struct {
	sessions           contract.SessionRepository
	subscriptionMapper *mapper.SubscriptionMapper
}

func NewPlanService(sessions contract.SessionRepository) PlanService {
	return &planService{
		sessions:           sessions,
		subscriptionMapper: mapper.NewSubscriptionMapper(),
	}
}

// GetUsageStatus returns current usage vs limit for the session
func (s *planService) GetUsageStatus(ctx context.Context, sessionID string) (*dto.UsageStatusResponse, error) {
	st, err := lookupSession(s.sessions, sessionID)
	if err != nil {
		return nil, err
	}

	snap := st.Snapshot()
	if !snap.LoggedIn() {
		return nil, apperror.Auth("not logged in")
	}

	return &dto.UsageStatusResponse{
		Plan:             string(snap.Subscription.Plan),
		Notes:            s.subscriptionMapper.ToUsage(snap.Subscription, snap.Gate),
		UpgradeAvailable: plan.UpgradeAvailable(snap.Subscription, snap.User.Role),
	}, nil
}
