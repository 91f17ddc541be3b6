package service

import (
	"saas-notes-be/internal/pkg/apperror"
	"saas-notes-be/internal/repository/contract"
	"saas-notes-be/pkg/store"
)

func lookupSession(repo contract.SessionRepository, sessionID string) (*store.Store, error) {
	st, ok := repo.Get(sessionID)
	if !ok {
		return nil, apperror.Auth("session expired, please log in again")
	}
	return st, nil
}
