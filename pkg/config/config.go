package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

// UpstreamConfig describes one backend service the portal calls.
// Timeout bounds every single request to that service; there is no retry.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
}

// CacheConfig bounds how long a cached collection may answer a read
// before the upstream is consulted again. A zero TTL disables snapshot
// reads entirely; every list then refetches.
type CacheConfig struct {
	SnapshotTTL time.Duration
}

type SessionConfig struct {
	SecretKey  string
	TTL        time.Duration
	CookieName string
}

type Config struct {
	Server   ServerConfig
	Labs     UpstreamConfig
	Users    UpstreamConfig
	Projects UpstreamConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Session  SessionConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8090"),
		},
		Labs: UpstreamConfig{
			BaseURL: getEnv("LABS_SERVICE_URL", "http://localhost:8080"),
			Timeout: getDuration("LABS_SERVICE_TIMEOUT", 10*time.Second),
		},
		Users: UpstreamConfig{
			BaseURL: getEnv("USERS_SERVICE_URL", "http://localhost:8081"),
			Timeout: getDuration("USERS_SERVICE_TIMEOUT", 10*time.Second),
		},
		Projects: UpstreamConfig{
			BaseURL: getEnv("PROJECTS_SERVICE_URL", "http://localhost:8082"),
			Timeout: getDuration("PROJECTS_SERVICE_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Cache: CacheConfig{
			SnapshotTTL: getDuration("CACHE_SNAPSHOT_TTL", 30*time.Second),
		},
		Session: SessionConfig{
			SecretKey:  getEnv("SESSION_SECRET_KEY", "3F2B1C9D85A47E6B2CC41F0D97A31"),
			TTL:        getDuration("SESSION_TTL", 24*time.Hour),
			CookieName: getEnv("SESSION_COOKIE_NAME", "lab_session"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: %s is not a valid duration, using default %s", key, fallback)
	}
	return fallback
}
