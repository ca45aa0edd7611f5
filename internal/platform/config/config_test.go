package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"VOTE_STORE", "VOTE_LOG_LEVEL", "VOTE_SQLITE_PATH", "POSTGRES_HOST", "POSTGRES_PORT", "REDIS_URL", "VOTE_REDIS_PREFIX"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "vote.db", cfg.SQLitePath)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "vote", cfg.RedisPrefix)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("VOTE_STORE", StorePostgres)
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("POSTGRES_USER", "user")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "votes")

	cfg := FromEnv()
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, "postgres://user:secret@db:6543/votes?sslmode=disable", cfg.Postgres.ConnString())
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("VOTE_REDIS_PREFIX=from-dotenv\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("VOTE_REDIS_PREFIX", "")
	os.Unsetenv("VOTE_REDIS_PREFIX")

	assert.Equal(t, "from-dotenv", Load().RedisPrefix)
}

func TestValidate(t *testing.T) {
	for _, store := range []string{StoreMemory, StoreSQLite, StorePostgres, StoreRedis} {
		assert.NoError(t, Config{Store: store}.Validate())
	}
	assert.Error(t, Config{Store: "mongo"}.Validate())
}
