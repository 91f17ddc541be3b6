// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"saas-notes-be/internal/config"
	"saas-notes-be/internal/dto"
	"saas-notes-be/internal/entity"
	"saas-notes-be/internal/mapper"
	"saas-notes-be/internal/pkg/apperror"
	"saas-notes-be/internal/pkg/logger"
	"saas-notes-be/internal/repository/contract"
	"saas-notes-be/pkg/events"
	"saas-notes-be/pkg/latency"
	"saas-notes-be/pkg/plan"
	"saas-notes-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type IAuthService interface {
	Accounts(ctx context.Context) []dto.DemoAccountDTO
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	QuickLogin(ctx context.Context, req *dto.QuickLoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Upgrade(ctx context.Context, sessionID string) (*dto.SubscriptionDTO, error)
	Me(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
}

type authService struct {
	accounts  *store.AccountBook
	policy    store.Policy
	sessions  contract.SessionRepository
	publisher IPublisherService
	delayer   latency.Delayer
	logger    logger.ILogger
	authCfg   config.AuthConfig

	userMapper         *mapper.UserMapper
	subscriptionMapper *mapper.SubscriptionMapper
}

func NewAuthService(
	accounts *store.AccountBook,
	policy store.Policy,
	sessions contract.SessionRepository,
	publisher IPublisherService,
	delayer latency.Delayer,
	logger logger.ILogger,
	authCfg config.AuthConfig,
) IAuthService {
	return &authService{
		accounts:           accounts,
		policy:             policy,
		sessions:           sessions,
		publisher:          publisher,
		delayer:            delayer,
		logger:             logger,
		authCfg:            authCfg,
		userMapper:         mapper.NewUserMapper(),
		subscriptionMapper: mapper.NewSubscriptionMapper(),
	}
}

func (s *authService) Accounts(ctx context.Context) []dto.DemoAccountDTO {
	return s.userMapper.ToDemoAccounts(s.accounts.Accounts())
}

// Login simulates a remote credential check: both outcomes are delayed.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	st := store.New(s.accounts, s.policy)

	user, err := latency.Run(ctx, s.delayer, func() (entity.User, error) {
		return st.Login(req.Email, req.Password)
	})
	if err != nil {
		s.logger.Warn("auth", "Login failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	return s.startSession(ctx, st, user)
}

// QuickLogin logs a demo account in without a password or delay.
func (s *authService) QuickLogin(ctx context.Context, req *dto.QuickLoginRequest) (*dto.LoginResponse, error) {
	st := store.New(s.accounts, s.policy)

	user, err := st.QuickLogin(req.Email)
	if err != nil {
		return nil, err
	}

	return s.startSession(ctx, st, user)
}

func (s *authService) startSession(ctx context.Context, st *store.Store, user entity.User) (*dto.LoginResponse, error) {
	sessionID := uuid.NewString()

	signedToken, err := s.signToken(sessionID, user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.sessions.Save(sessionID, st)

	sub := st.Subscription()
	s.logger.Info("auth", "Session started", map[string]interface{}{
		"session_id": sessionID,
		"email":      user.Email,
		"tenant":     user.Tenant,
		"plan":       sub.Plan,
	})

	publishQuietly(ctx, s.publisher, s.logger, events.New(events.TypeUserLogin, map[string]interface{}{
		"session_id": sessionID,
		"email":      user.Email,
		"tenant":     user.Tenant,
		"role":       user.Role,
	}))

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		ExpiresIn:    int64(s.authCfg.TokenTTL.Seconds()),
		User:         s.userMapper.ToDTO(user),
		Subscription: s.subscriptionMapper.ToDTO(sub),
	}, nil
}

func (s *authService) signToken(sessionID string, user entity.User) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"email":      user.Email,
		"tenant":     user.Tenant,
		"role":       string(user.Role),
		"exp":        time.Now().Add(s.authCfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.authCfg.JwtSecret))
}

// Logout is idempotent: an unknown or expired session is already logged out.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	st, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}

	user, _ := st.User()
	st.Logout()
	s.sessions.Delete(sessionID)

	publishQuietly(ctx, s.publisher, s.logger, events.New(events.TypeUserLogout, map[string]interface{}{
		"session_id": sessionID,
		"email":      user.Email,
		"tenant":     user.Tenant,
	}))

	return nil
}

func (s *authService) Upgrade(ctx context.Context, sessionID string) (*dto.SubscriptionDTO, error) {
	st, err := lookupSession(s.sessions, sessionID)
	if err != nil {
		return nil, err
	}

	sub, err := st.Upgrade()
	if err != nil {
		return nil, err
	}

	user, _ := st.User()
	publishQuietly(ctx, s.publisher, s.logger, events.New(events.TypeSubscriptionUpgraded, map[string]interface{}{
		"session_id": sessionID,
		"email":      user.Email,
		"tenant":     user.Tenant,
	}))

	res := s.subscriptionMapper.ToDTO(sub)
	return &res, nil
}

func (s *authService) Me(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	st, err := lookupSession(s.sessions, sessionID)
	if err != nil {
		return nil, err
	}

	snap := st.Snapshot()
	if !snap.LoggedIn() {
		return nil, apperror.Auth("not logged in")
	}

	return &dto.SessionResponse{
		User:             s.userMapper.ToDTO(*snap.User),
		Subscription:     s.subscriptionMapper.ToDTO(snap.Subscription),
		UpgradeAvailable: plan.UpgradeAvailable(snap.Subscription, snap.User.Role),
	}, nil
}

// publishQuietly logs but does not fail the request, activity is auxiliary.
func publishQuietly(ctx context.Context, publisher IPublisherService, log logger.ILogger, evt events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		log.Warn("events", "Failed to publish event", map[string]interface{}{
			"event_type": evt.EventType(),
			"error":      err.Error(),
		})
	}
}
