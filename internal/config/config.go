package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Env            string
	ListenAddr     string
	Store          string // postgres|memory
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	LockTTL        time.Duration
	MigrateOnStart bool
	LogLevel       string
	LogFormat      string // json|text
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment, after loading .env if one is present.
func Load() (Config, error) {
	_ = godotenv.Load()
	cfg := Config{
		Env:            getenv("APP_ENV", "development"),
		ListenAddr:     getenv("LISTEN_ADDR", ":8080"),
		Store:          strings.ToLower(getenv("STORE", "postgres")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		LockTTL:        getenvDuration("LOCK_TTL", 10*time.Second),
		MigrateOnStart: getenvBool("MIGRATE_ON_START", false),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", ""),
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
		if cfg.Env == "production" {
			cfg.LogFormat = "json"
		}
	}
	switch cfg.Store {
	case "memory":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("DATABASE_URL not set (required for STORE=postgres)")
		}
	default:
		return cfg, fmt.Errorf("unknown STORE %q", cfg.Store)
	}
	return cfg, nil
}

// Logger builds the process logger from the config.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		log.WithField("log_level", c.LogLevel).Warn("unknown log level; using info")
	}
	log.SetLevel(level)
	return log
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if secs := getenvInt(key, -1); secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
