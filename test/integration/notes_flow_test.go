package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"saas-notes-be/internal/bootstrap"
	"saas-notes-be/internal/config"
	"saas-notes-be/internal/dto"
	"saas-notes-be/internal/entity"
	"saas-notes-be/internal/pkg/serverutils"
	"saas-notes-be/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()

	accounts := make([]entity.Account, len(config.DefaultAccounts))
	copy(accounts, config.DefaultAccounts)

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(dir, "app.log"),
			ActivityLogPath:    filepath.Join(dir, "activity.log"),
			CorsAllowedOrigins: "http://localhost:5173",
		},
		Auth: config.AuthConfig{
			JwtSecret:  "integration-secret",
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
		Demo: config.DemoConfig{
			FreeLimit:   3,
			ProTenant:   "Globex",
			ProRole:     entity.UserRoleAdmin,
			WelcomeNote: true,
		},
		Events:   config.EventsConfig{Topic: "NOTES_ACTIVITY_TEST"},
		Accounts: accounts,
	}

	container, err := bootstrap.NewContainer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	return server.New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) serverutils.BaseResponse[T] {
	t.Helper()
	var out serverutils.BaseResponse[T]
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	status, raw := doJSON(t, app, http.MethodPost, "/api/auth/v1/login", "", dto.LoginRequest{
		Email:    email,
		Password: "password",
	})
	require.Equal(t, http.StatusOK, status)
	return decode[dto.LoginResponse](t, raw).Data.AccessToken
}

func TestAccountsAreListed(t *testing.T) {
	app := newTestApp(t)

	status, raw := doJSON(t, app, http.MethodGet, "/api/auth/v1/accounts", "", nil)
	require.Equal(t, http.StatusOK, status)

	res := decode[[]dto.DemoAccountDTO](t, raw)
	assert.Len(t, res.Data, 4)
	assert.NotContains(t, string(raw), "password")
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	t.Run("Valid credentials", func(t *testing.T) {
		status, raw := doJSON(t, app, http.MethodPost, "/api/auth/v1/login", "", dto.LoginRequest{
			Email:    "admin@globex.test",
			Password: "password",
		})
		require.Equal(t, http.StatusOK, status)

		res := decode[dto.LoginResponse](t, raw)
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Data.AccessToken)
		assert.Equal(t, "Globex", res.Data.User.Tenant)
		assert.Equal(t, "Pro", res.Data.Subscription.Plan)
		assert.Nil(t, res.Data.Subscription.NotesLimit)
	})

	t.Run("Invalid password", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/auth/v1/login", "", dto.LoginRequest{
			Email:    "admin@globex.test",
			Password: "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("Malformed email", func(t *testing.T) {
		status, raw := doJSON(t, app, http.MethodPost, "/api/auth/v1/login", "", map[string]string{
			"email":    "not-an-email",
			"password": "password",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, string(raw), "email")
	})

	t.Run("Quick login", func(t *testing.T) {
		status, raw := doJSON(t, app, http.MethodPost, "/api/auth/v1/quick-login", "", dto.QuickLoginRequest{
			Email: "user@acme.test",
		})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Free", decode[dto.LoginResponse](t, raw).Data.Subscription.Plan)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/api/note/v1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/plan/v1/usage", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestFreePlanLimitAndUpgrade(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin@acme.test")

	// welcome note counts as the first
	for i := 0; i < 2; i++ {
		status, _ := doJSON(t, app, http.MethodPost, "/api/note/v1", token, dto.CreateNoteRequest{
			Title:   "Note",
			Content: "Body",
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, raw := doJSON(t, app, http.MethodGet, "/api/plan/v1/usage", token, nil)
	require.Equal(t, http.StatusOK, status)
	usage := decode[dto.UsageStatusResponse](t, raw)
	assert.True(t, usage.Data.Notes.AtLimit)
	assert.False(t, usage.Data.Notes.CanCreate)
	assert.True(t, usage.Data.UpgradeAvailable)

	status, raw = doJSON(t, app, http.MethodPost, "/api/note/v1", token, dto.CreateNoteRequest{
		Title:   "One too many",
		Content: "Body",
	})
	require.Equal(t, http.StatusTooManyRequests, status)
	limited := decode[serverutils.LimitExceededData](t, raw)
	assert.False(t, limited.Success)
	assert.True(t, limited.Data.ShowModalPricing)
	assert.EqualValues(t, 3, limited.Data.Limit)

	status, raw = doJSON(t, app, http.MethodPost, "/api/auth/v1/upgrade", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Pro", decode[dto.SubscriptionDTO](t, raw).Data.Plan)

	status, _ = doJSON(t, app, http.MethodPost, "/api/note/v1", token, dto.CreateNoteRequest{
		Title:   "Unlimited",
		Content: "Body",
	})
	assert.Equal(t, http.StatusCreated, status)

	status, raw = doJSON(t, app, http.MethodGet, "/api/note/v1", token, nil)
	require.Equal(t, http.StatusOK, status)
	list := decode[dto.ListNotesResponse](t, raw)
	assert.Len(t, list.Data.Notes, 4)
	assert.Equal(t, "Unlimited", list.Data.Notes[0].Title)
	assert.Nil(t, list.Data.Usage.Limit)
}

func TestMemberUpgradeForbidden(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "user@acme.test")

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/v1/upgrade", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestNoteEditAndDelete(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "user@globex.test")

	status, raw := doJSON(t, app, http.MethodPost, "/api/note/v1", token, dto.CreateNoteRequest{
		Title:   "Draft",
		Content: "v1",
	})
	require.Equal(t, http.StatusCreated, status)
	created := decode[dto.NoteResponse](t, raw).Data

	status, raw = doJSON(t, app, http.MethodPut, "/api/note/v1/"+created.Id, token, map[string]string{
		"title":   "Final",
		"content": "v2",
	})
	require.Equal(t, http.StatusOK, status)
	updated := decode[dto.NoteResponse](t, raw).Data
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	status, _ = doJSON(t, app, http.MethodPut, "/api/note/v1/missing", token, map[string]string{
		"title":   "x",
		"content": "y",
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/note/v1/"+created.Id, token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/note/v1/"+created.Id, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestLogoutEndsSession(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin@acme.test")

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/v1/logout", token, nil)
	require.Equal(t, http.StatusOK, status)

	// the token is still signed, but its session is gone
	status, _ = doJSON(t, app, http.MethodGet, "/api/auth/v1/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
