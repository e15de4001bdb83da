package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all runtime settings, loaded from the environment
type Config struct {
	ServerPort int

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ExtensionWindow is the anti-snipe window: bids accepted with less
	// remaining time than this extend the auction.
	ExtensionWindow time.Duration
	// DefaultEndTime is the time of day an auction ends when no explicit
	// end time is set, as an offset from midnight.
	DefaultEndTime time.Duration
	// Timezone resolves auction-day boundaries.
	Timezone *time.Location

	FrontendURL string
}

// Load reads configuration from the environment, consulting a .env file when
// present
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:    getEnvInt("PORT", 8080),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "rangilalls"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		FrontendURL:   getEnv("FRONTEND_URL", ""),
	}

	var err error
	if cfg.ExtensionWindow, err = getEnvDuration("EXTENSION_WINDOW", 6*time.Minute); err != nil {
		return nil, err
	}
	if cfg.DefaultEndTime, err = getEnvTimeOfDay("AUCTION_END_TIME", 17*time.Hour); err != nil {
		return nil, err
	}

	tz := getEnv("AUCTION_TIMEZONE", "UTC")
	cfg.Timezone, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("config: invalid AUCTION_TIMEZONE %q: %w", tz, err)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
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
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

// getEnvTimeOfDay parses "HH:MM" into an offset from midnight
func getEnvTimeOfDay(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q (want HH:MM): %w", key, v, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
