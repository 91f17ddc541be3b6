package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"saas-notes-be/internal/entity"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Demo     DemoConfig
	Events   EventsConfig
	Tracing  TracingConfig
	Accounts []entity.Account
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	ActivityLogPath    string
	CorsAllowedOrigins string
}

type AuthConfig struct {
	JwtSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

type DemoConfig struct {
	LoginLatency time.Duration
	FreeLimit    int
	ProTenant    string
	ProRole      entity.UserRole
	WelcomeNote  bool
}

type EventsConfig struct {
	Topic string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

// DefaultAccounts is the demo allow-list. Every account shares the
// password "password".
var DefaultAccounts = []entity.Account{
	{Email: "admin@acme.test", Password: "password", Tenant: "Acme", Role: entity.UserRoleAdmin},
	{Email: "user@acme.test", Password: "password", Tenant: "Acme", Role: entity.UserRoleMember},
	{Email: "admin@globex.test", Password: "password", Tenant: "Globex", Role: entity.UserRoleAdmin},
	{Email: "user@globex.test", Password: "password", Tenant: "Globex", Role: entity.UserRoleMember},
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	freeLimit := getEnvAsInt("FREE_NOTES_LIMIT", 3)
	if freeLimit < 1 {
		log.Printf("[WARN] FREE_NOTES_LIMIT must be positive, got %d. Using 3", freeLimit)
		freeLimit = 3
	}

	accounts := make([]entity.Account, len(DefaultAccounts))
	copy(accounts, DefaultAccounts)

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			ActivityLogPath:    getEnv("ACTIVITY_LOG_PATH", "logs/activity.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Auth: AuthConfig{
			JwtSecret:  getEnv("JWT_SECRET", "default_secret"),
			TokenTTL:   getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
			BcryptCost: getEnvAsInt("BCRYPT_COST", 10),
		},
		Demo: DemoConfig{
			LoginLatency: getEnvAsDuration("LOGIN_LATENCY", time.Second),
			FreeLimit:    freeLimit,
			ProTenant:    getEnv("PRO_TENANT", "Globex"),
			ProRole:      entity.UserRole(getEnv("PRO_ROLE", string(entity.UserRoleAdmin))),
			WelcomeNote:  getEnvAsBool("WELCOME_NOTE", true),
		},
		Events: EventsConfig{
			Topic: getEnv("ACTIVITY_TOPIC_NAME", "NOTES_ACTIVITY"),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "saas-notes-backend"),
		},
		Accounts: accounts,
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("1s", "250ms").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
