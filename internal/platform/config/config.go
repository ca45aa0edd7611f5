package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
}

func (p Postgres) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", p.User, p.Password, p.Host, p.Port, p.DB)
}

type Config struct {
	Store       string
	LogLevel    string
	SQLitePath  string
	Postgres    Postgres
	RedisURL    string
	RedisPrefix string
}

// Load reads a .env file when one is present and then builds the config from
// the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		Store:      getEnv("VOTE_STORE", StoreSQLite),
		LogLevel:   getEnv("VOTE_LOG_LEVEL", "info"),
		SQLitePath: getEnv("VOTE_SQLITE_PATH", "vote.db"),
		Postgres: Postgres{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DB:       os.Getenv("POSTGRES_DB"),
		},
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPrefix: getEnv("VOTE_REDIS_PREFIX", "vote"),
	}
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite, StorePostgres, StoreRedis:
		return nil
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
