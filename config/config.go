// Package config reads the environment-driven configuration and owns the
// MongoDB connection lifecycle.
package config

import (
	"os"
	"strings"
)

type Config struct {
	Port          string
	MongoURL      string
	DBName        string
	CORSOrigins   []string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	RedisAddr     string
	RedisPassword string
}

// Load reads configuration from the environment. REDIS_ADDR is optional;
// leaving it empty disables the cache. JWT_SECRET has no default and is
// checked at startup.
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "realestate"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
	cfg.CORSOrigins = strings.Split(getEnv("CORS_ORIGINS", "*"), ",")
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
