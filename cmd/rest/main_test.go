package main

import (
	"context"
	"path/filepath"
	"testing"

	"saas-notes-be/internal/config"
	"saas-notes-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestRunReturnsBootstrapError(t *testing.T) {
	dir := t.TempDir()
	dup := entity.Account{Email: "admin@acme.test", Password: "password", Tenant: "Acme", Role: entity.UserRoleAdmin}

	err := run(context.Background(), &config.Config{
		App: config.AppConfig{
			Port:            "0",
			LogFilePath:     filepath.Join(dir, "app.log"),
			ActivityLogPath: filepath.Join(dir, "activity.log"),
		},
		Auth:     config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Accounts: []entity.Account{dup, dup},
	})

	assert.ErrorContains(t, err, "unable to bootstrap container")
}
