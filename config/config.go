package config

import (
	"log"
	"os"
	"strconv"
)

// TokenConfig holds everything the user service needs to sign access tokens.
// It is built once at startup and passed in explicitly; nothing reads the
// environment after Load returns.
type TokenConfig struct {
	Secret        string
	ExpiryMinutes int
}

// Config is the full application configuration.
type Config struct {
	Port string

	// DBDriver selects the storage backend: "sqlite" (default) or "postgres".
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	Token TokenConfig
}

// Load assembles the configuration from environment variables.
// It fails fast on settings the server cannot run without.
func Load() *Config {
	cfg := &Config{
		Port:       getEnv("PORT", "8000"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "blog.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Token: TokenConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			ExpiryMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		},
	}

	if cfg.Token.Secret == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s (%q), using default %d", key, v, fallback)
		return fallback
	}
	return n
}
