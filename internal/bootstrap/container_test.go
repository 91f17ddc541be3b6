package bootstrap

import (
	"path/filepath"
	"testing"
	"time"

	"saas-notes-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewContainerWiresAndCloses(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		App: config.AppConfig{
			LogFilePath:     filepath.Join(dir, "app.log"),
			ActivityLogPath: filepath.Join(dir, "activity.log"),
		},
		Auth:     config.AuthConfig{JwtSecret: "s", TokenTTL: time.Hour, BcryptCost: bcrypt.MinCost},
		Demo:     config.DemoConfig{FreeLimit: 3, ProTenant: "Globex"},
		Events:   config.EventsConfig{Topic: "NOTES_ACTIVITY_TEST"},
		Accounts: config.DefaultAccounts,
	}

	c, err := NewContainer(cfg)
	require.NoError(t, err)

	assert.NotNil(t, c.AuthController)
	assert.NotNil(t, c.NoteController)
	assert.NotNil(t, c.PlanController)
	assert.NotNil(t, c.JwtMiddleware)
	assert.Len(t, c.Accounts.Accounts(), len(config.DefaultAccounts))
	assert.NoError(t, c.Close())
}
