package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        int
	DatabaseURL string

	JWTSecret       string
	TokenTTLMinutes int

	// First-run bootstrap credentials. Defaults are deliberately well known
	// and must be changed immediately after the first startup.
	BootstrapUsername string
	BootstrapPassword string

	BcryptCost int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	cfg := Config{
		Port:              8080,
		DatabaseURL:       os.Getenv("GOVEVOTE_DATABASE_URL"),
		JWTSecret:         os.Getenv("GOVEVOTE_JWT_SECRET"),
		TokenTTLMinutes:   30,
		BootstrapUsername: getenv("GOVEVOTE_BOOTSTRAP_USERNAME", "admin"),
		BootstrapPassword: getenv("GOVEVOTE_BOOTSTRAP_PASSWORD", "admin123"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}

	if v := os.Getenv("GOVEVOTE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			cfg.Port = p
		}
	}

	ttl := os.Getenv("GOVEVOTE_TOKEN_TTL_MINUTES")
	if ttl == "" {
		ttl = os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES")
	}
	if ttl != "" {
		if n, err := strconv.Atoi(ttl); err == nil && n > 0 {
			cfg.TokenTTLMinutes = n
		}
	}

	if v := os.Getenv("GOVEVOTE_BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BcryptCost = n
		}
	}

	return cfg
}

func (c Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}
