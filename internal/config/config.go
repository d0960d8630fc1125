package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	// Oracle (clue generation and grading)
	OpenAIAPIKey string
	OracleModel  string

	// Ledger
	HorizonURL            string
	NetworkPassphrase     string
	PlatformWalletAddress string
	PlatformSecretKey     string // never logged, never stored in session state

	// Deposits
	DepositAmount  string // canonical 7-decimal string, e.g. "2.0000000"
	DepositMemoTTL time.Duration

	// Sessions
	SessionStore string // "memory" or "redis"
	SessionTTL   time.Duration
	RedisAddr    string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OracleModel:  getEnv("ORACLE_MODEL", "gpt-4"),

		HorizonURL:            getEnv("HORIZON_URL", "https://horizon.stellar.org"),
		NetworkPassphrase:     getEnv("NETWORK_PASSPHRASE", "Public Global Stellar Network ; September 2015"),
		PlatformWalletAddress: getEnv("PLATFORM_WALLET_ADDRESS", ""),
		PlatformSecretKey:     getEnv("PLATFORM_SECRET_KEY", ""),

		DepositAmount: getEnv("DEPOSIT_AMOUNT", "2.0000000"),

		SessionStore: getEnv("SESSION_STORE", "memory"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	memoTTL, err := time.ParseDuration(getEnv("DEPOSIT_MEMO_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEPOSIT_MEMO_TTL value: %w", err)
	}
	cfg.DepositMemoTTL = memoTTL

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL value: %w", err)
	}
	cfg.SessionTTL = sessionTTL

	// The custodial account is the single point of trust; refuse to start
	// without it rather than failing on the first withdrawal.
	if cfg.PlatformWalletAddress == "" {
		return nil, fmt.Errorf("PLATFORM_WALLET_ADDRESS environment variable must be set")
	}
	if cfg.PlatformSecretKey == "" {
		return nil, fmt.Errorf("PLATFORM_SECRET_KEY environment variable must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
