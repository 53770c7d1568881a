// README: Config loader with env defaults for HTTP, Redis, AI, and limits.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		// Addr empty disables the itinerary cache.
		Addr string
	}
	AI struct {
		// GeminiKey empty puts the service in fallback-only mode.
		GeminiKey string
	}
	Log struct {
		Level string
	}
	CORS struct {
		AllowOrigins []string
	}
	RateLimit RateLimitConfig
}

func Load() (Config, error) {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("YATRA_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("YATRA_REDIS_ADDR", "")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Log.Level = envOrDefault("YATRA_LOG_LEVEL", "info")
	cfg.CORS.AllowOrigins = splitList(envOrDefault("YATRA_CORS_ORIGINS", "*"))
	cfg.RateLimit.PerMinute = envOrDefaultInt("YATRA_RATE_PER_MINUTE", 10)
	cfg.RateLimit.Burst = envOrDefaultInt("YATRA_RATE_BURST", 5)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
