package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every externally tunable setting. Values come from the
// environment, optionally seeded from a .env file, with fallbacks that
// make the binary runnable with zero setup.
type Config struct {
	Port    string
	GinMode string

	// JWTSecret signs session tokens
	JWTSecret []byte

	// Mock admin credentials — there is no real identity provider, a
	// production deployment would externalize these to a credential store
	AdminUsername string
	AdminPassword string

	// StorageBackend selects the key-value layer: sqlite, redis, memory
	StorageBackend string
	SQLitePath     string
	RedisAddr      string

	// CatalogDelay is the simulated menu fetch latency
	CatalogDelay time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", ""),
		JWTSecret:      []byte(getEnv("JWT_SECRET", "canteen_savor_super_secret_2024")),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		StorageBackend: getEnv("STORAGE_BACKEND", "sqlite"),
		SQLitePath:     getEnv("SQLITE_PATH", "canteen.db"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		CatalogDelay:   getDuration("CATALOG_DELAY", 500*time.Millisecond),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
