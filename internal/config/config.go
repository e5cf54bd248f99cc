package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Port string

	Routing RoutingConfig
	Cache   CacheConfig
	Session SessionConfig
	Log     LogConfig

	DBPath      string
	DatabaseURL string
	SeedPath    string
}

type RoutingConfig struct {
	Provider    string // ors, osrm, none
	Timeout     time.Duration
	ORSAPIKey   string
	ORSBaseURL  string
	ORSProfile  string
	OSRMBaseURL string
	OSRMProfile string
}

type CacheConfig struct {
	Backend   string // none, sqlite, postgres, redis
	TTL       time.Duration
	RedisAddr string
}

type SessionConfig struct {
	MaxIdle       time.Duration
	SweepInterval time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from a .env file (if any) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found (using environment variables)")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("ROUTING_PROVIDER", "osrm")
	v.SetDefault("ROUTING_TIMEOUT", 5*time.Second)
	v.SetDefault("ORS_API_KEY", "")
	v.SetDefault("ORS_BASE_URL", "https://api.openrouteservice.org")
	v.SetDefault("ORS_PROFILE", "driving-car")
	v.SetDefault("OSRM_BASE_URL", "https://router.project-osrm.org")
	v.SetDefault("OSRM_PROFILE", "driving")
	v.SetDefault("ROUTE_CACHE", "none")
	v.SetDefault("ROUTE_CACHE_TTL", 24*time.Hour)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("DB_PATH", "data/app.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SEED_PATH", "data/seeds/technicians.json")
	v.SetDefault("SESSION_MAX_IDLE", 2*time.Hour)
	v.SetDefault("SESSION_SWEEP_INTERVAL", 5*time.Minute)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_FILE", "")

	return &Config{
		Port: v.GetString("PORT"),
		Routing: RoutingConfig{
			Provider:    strings.ToLower(strings.TrimSpace(v.GetString("ROUTING_PROVIDER"))),
			Timeout:     v.GetDuration("ROUTING_TIMEOUT"),
			ORSAPIKey:   strings.TrimSpace(v.GetString("ORS_API_KEY")),
			ORSBaseURL:  v.GetString("ORS_BASE_URL"),
			ORSProfile:  v.GetString("ORS_PROFILE"),
			OSRMBaseURL: v.GetString("OSRM_BASE_URL"),
			OSRMProfile: v.GetString("OSRM_PROFILE"),
		},
		Cache: CacheConfig{
			Backend:   strings.ToLower(strings.TrimSpace(v.GetString("ROUTE_CACHE"))),
			TTL:       v.GetDuration("ROUTE_CACHE_TTL"),
			RedisAddr: v.GetString("REDIS_ADDR"),
		},
		Session: SessionConfig{
			MaxIdle:       v.GetDuration("SESSION_MAX_IDLE"),
			SweepInterval: v.GetDuration("SESSION_SWEEP_INTERVAL"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			File:   v.GetString("LOG_FILE"),
		},
		DBPath:      v.GetString("DB_PATH"),
		DatabaseURL: strings.TrimSpace(v.GetString("DATABASE_URL")),
		SeedPath:    v.GetString("SEED_PATH"),
	}
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
