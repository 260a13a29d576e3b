package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	DBMaxConns    int32
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// Server-side fallback credential; callers may send their own in X-OpenAI-Key.
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	OpenAIModel        string
	OpenAIOrganization string
	OpenAITemperature  float32
	OpenAIMaxTokens    int
	OpenAITimeout      time.Duration

	// Empty means the catalog compiled into the binary.
	PromptsFile string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBMaxConns:    int32(getEnvInt("DB_MAX_CONNS", 0)),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "founderkit"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4"),
		OpenAIOrganization: os.Getenv("OPENAI_ORGANIZATION"),
		OpenAITemperature:  getEnvFloat32("OPENAI_TEMPERATURE", 0.7),
		OpenAIMaxTokens:    getEnvInt("OPENAI_MAX_TOKENS", 2000),
		OpenAITimeout:      time.Duration(getEnvInt("OPENAI_TIMEOUT_SECONDS", 60)) * time.Second,

		PromptsFile: os.Getenv("PROMPTS_FILE"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat32(key string, def float32) float32 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return def
}
