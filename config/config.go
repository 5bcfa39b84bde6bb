package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the upstream comparison backend and rate limiting.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	ALLOWED_ORIGINS=http://localhost:5173,http://localhost:3000
//	BACKEND_URL=http://localhost:8000
//	BACKEND_TIMEOUT=15s
//	DISPLAY_LOCALE=es-AR
//	LOAD_ON_START=true
//	RATE_LIMIT_PER_MINUTE=60
//	REDIS_ADDR=localhost:6379
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Backend   BackendConfig   // Upstream comparison backend
	Display   DisplayConfig   // Rendering preferences
	RateLimit RateLimitConfig // Request throttling
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string   // The TCP port the HTTP server will listen on (e.g., "8080")
	AllowedOrigins []string // Browser origins allowed by CORS
}

// BackendConfig describes where the comparison is fetched from.
//
// Fields:
//   - URL: scheme and host of the backend serving /api/comparison.
//   - Timeout: per-request timeout for the fetch.
//   - LoadOnStart: fetch once when the server starts.
type BackendConfig struct {
	URL         string
	Timeout     time.Duration
	LoadOnStart bool
}

// DisplayConfig holds the display-formatting hook settings.
type DisplayConfig struct {
	Locale string // BCP 47 tag used for collation and number formatting
}

// RateLimitConfig configures the per-client request limiter.
//
// When RedisAddr is empty counters are kept in memory, which is only correct
// for a single instance.
type RateLimitConfig struct {
	PerMinute     int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("BACKEND_URL", "http://localhost:8000")
	viper.SetDefault("BACKEND_TIMEOUT", "15s")
	viper.SetDefault("LOAD_ON_START", true)
	viper.SetDefault("DISPLAY_LOCALE", "es-AR")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			AllowedOrigins: splitList(viper.GetString("ALLOWED_ORIGINS")),
		},
		Backend: BackendConfig{
			URL:         strings.TrimRight(viper.GetString("BACKEND_URL"), "/"),
			Timeout:     viper.GetDuration("BACKEND_TIMEOUT"),
			LoadOnStart: viper.GetBool("LOAD_ON_START"),
		},
		Display: DisplayConfig{
			Locale: viper.GetString("DISPLAY_LOCALE"),
		},
		RateLimit: RateLimitConfig{
			PerMinute:     viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			RedisAddr:     viper.GetString("REDIS_ADDR"),
			RedisPassword: viper.GetString("REDIS_PASSWORD"),
			RedisDB:       viper.GetInt("REDIS_DB"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Backend.URL == "" {
		missing = append(missing, "BACKEND_URL")
	}
	if AppConfig.Backend.Timeout <= 0 {
		missing = append(missing, "BACKEND_TIMEOUT")
	}
	if AppConfig.Display.Locale == "" {
		missing = append(missing, "DISPLAY_LOCALE")
	}
	if AppConfig.RateLimit.PerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
