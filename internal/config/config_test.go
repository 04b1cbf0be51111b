package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/paladin/internal/config"
	"github.com/KirkDiggler/paladin/internal/errors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paladin.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
log_file = "game.log"
budget = 70

[options]
debug = true
difficulty = 3

[store]
kind = "redis"
redis_addr = "localhost:6379"
`)
	t.Setenv("PALADIN_DIFFICULTY", "4")
	t.Setenv("PALADIN_STORE_REDIS_ADDR", "cache:6379")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Options.Debug)
	assert.Equal(t, 4, cfg.Options.Difficulty)
	assert.Equal(t, "80x24", cfg.Options.Dimensions)
	assert.Equal(t, config.StoreRedis, cfg.Store.Kind)
	assert.Equal(t, "cache:6379", cfg.Store.RedisAddr)
	assert.Equal(t, "game.log", cfg.LogFile)
	assert.Equal(t, 70, cfg.Budget)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.IsNotFound(err))

	_, err = config.Load(writeFile(t, "budget = ["))
	assert.True(t, errors.IsInvalidArgument(err))

	t.Setenv("PALADIN_BUDGET", "lots")
	_, err = config.Load("")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *config.Config)
		want   string
	}{
		{
			name:   "difficulty above ceiling",
			mutate: func(c *config.Config) { c.Options.Difficulty = 6 },
			want:   "options.difficulty",
		},
		{
			name:   "unknown store",
			mutate: func(c *config.Config) { c.Store.Kind = "s3" },
			want:   "store.kind",
		},
		{
			name:   "redis without address",
			mutate: func(c *config.Config) { c.Store.Kind = config.StoreRedis },
			want:   "store.redis_addr",
		},
		{
			name:   "file without directory",
			mutate: func(c *config.Config) { c.Store.Dir = "" },
			want:   "store.dir",
		},
		{
			name:   "non positive budget",
			mutate: func(c *config.Config) { c.Budget = 0 },
			want:   "budget",
		},
		{
			name:   "budget too small for the dice",
			mutate: func(c *config.Config) { c.Budget = 20 },
			want:   "budget",
		},
		{
			name:   "budget too large for the dice",
			mutate: func(c *config.Config) { c.Budget = 200 },
			want:   "budget",
		},
		{
			name:   "dice that cannot vary",
			mutate: func(c *config.Config) { c.Dice = "1d1" },
			want:   "budget",
		},
		{
			name:   "bad dice",
			mutate: func(c *config.Config) { c.Dice = "d" },
			want:   "dice",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
