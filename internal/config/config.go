package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	BackendURL         string
	BackendInsecureTLS bool
	SessionSecret      string
	SessionTTL         time.Duration
	AllowedOrigins     []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
}

// Load reads configuration from the environment, after applying a .env file
// when one is present in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		BackendURL:         strings.TrimRight(getEnv("BACKEND_URL", "https://localhost:7192/api"), "/"),
		BackendInsecureTLS: getEnvBool("BACKEND_INSECURE_TLS", false),
		SessionSecret:      getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
		SessionTTL:         getEnvDuration("SESSION_TTL", 12*time.Hour),
		AllowedOrigins:     getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:8080"}),
		ReadTimeout:        getEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:       getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("WARNING: invalid boolean for %s, using default", key)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("WARNING: invalid duration for %s, using default", key)
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
