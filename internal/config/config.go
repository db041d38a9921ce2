package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// EnvProduction enables secure cookies and production logging.
	EnvProduction = "production"

	// DefaultJWTSecret is only acceptable outside production.
	DefaultJWTSecret = "change-me"

	StoreMemory = "memory"
	StoreMySQL  = "mysql"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Environment string
	ServerPort  string
	LogLevel    string
	JWTSecret   string
	UserStore   string
	UsersFile   string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SwaggerHost string
	AI          AIConfig
}

// AIConfig configures the upstream generation backend.
type AIConfig struct {
	Provider        string
	Model           string
	APIKey          string
	BaseURL         string
	MaxOutputTokens int
	Temperature     float64
	RequestTimeout  time.Duration
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present; one
// that exists but cannot be read is an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	provider := getEnv("AI_PROVIDER", ProviderOpenAI)

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		JWTSecret:   getEnv("JWT_SECRET", DefaultJWTSecret),
		UserStore:   getEnv("USER_STORE", StoreMemory),
		UsersFile:   getEnv("USERS_FILE", "config/users.yaml"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/devboost?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		AI: AIConfig{
			Provider:        provider,
			Model:           getEnv("AI_MODEL", defaultModel(provider)),
			APIKey:          os.Getenv("AI_API_KEY"),
			BaseURL:         getEnv("AI_BASE_URL", defaultBaseURL(provider)),
			MaxOutputTokens: getEnvInt("AI_MAX_OUTPUT_TOKENS", 2000),
			Temperature:     getEnvFloat("AI_TEMPERATURE", 0.3),
			RequestTimeout:  getEnvDuration("AI_REQUEST_TIMEOUT", 60*time.Second),
		},
	}, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret) {
		return errors.New("JWT_SECRET must be set in production")
	}
	switch c.UserStore {
	case StoreMemory, StoreMySQL:
	default:
		return fmt.Errorf("unknown USER_STORE %q", c.UserStore)
	}
	switch c.AI.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AI.Provider)
	}
	if c.AI.MaxOutputTokens <= 0 {
		return errors.New("AI_MAX_OUTPUT_TOKENS must be positive")
	}
	return nil
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.0-flash"
	}
	return "gpt-4o"
}

// defaultBaseURL is empty for Gemini so the SDK picks its own endpoint.
func defaultBaseURL(provider string) string {
	if provider == ProviderGemini {
		return ""
	}
	return "https://api.openai.com/v1"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
