package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nothke/Pool/pkg/config"
	"github.com/nothke/Pool/pkg/errors"
	"github.com/nothke/Pool/pkg/testutil"
)

func TestNewPoolConfigDefaults(t *testing.T) {
	cfg := config.NewPoolConfig("bullets", 256)

	assert.Equal(t, "bullets", cfg.Name)
	assert.Equal(t, 256, cfg.Capacity)
	assert.False(t, cfg.IndexedRelease)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.PoolConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *config.PoolConfig) {}},
		{name: "empty name", mutate: func(c *config.PoolConfig) { c.Name = "" }, wantErr: true},
		{name: "zero capacity", mutate: func(c *config.PoolConfig) { c.Capacity = 0 }, wantErr: true},
		{name: "negative capacity", mutate: func(c *config.PoolConfig) { c.Capacity = -5 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewPoolConfig("bullets", 256)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	path := testutil.WriteConfigFile(t, "pool.yaml", `
name: enemies
capacity: 64
indexed_release: true
observability:
  enable_metrics: true
  log_level: debug
`)

	var cfg config.PoolConfig
	require.NoError(t, config.Load(path, &cfg))

	assert.Equal(t, "enemies", cfg.Name)
	assert.Equal(t, 64, cfg.Capacity)
	assert.True(t, cfg.IndexedRelease)
	assert.True(t, cfg.Observability.EnableMetrics)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestLoadJSON(t *testing.T) {
	path := testutil.WriteConfigFile(t, "pool.json",
		`{"name":"particles","capacity":1024,"indexed_release":false}`)

	var cfg config.PoolConfig
	require.NoError(t, config.Load(path, &cfg))

	assert.Equal(t, "particles", cfg.Name)
	assert.Equal(t, 1024, cfg.Capacity)
	assert.False(t, cfg.IndexedRelease)
}

func TestLoadSubstitutesEnvVars(t *testing.T) {
	t.Setenv("POOL_NAME", "projectiles")

	path := testutil.WriteConfigFile(t, "pool.yaml", `
name: ${POOL_NAME}
capacity: 8
`)

	var cfg config.PoolConfig
	require.NoError(t, config.Load(path, &cfg))
	assert.Equal(t, "projectiles", cfg.Name)
}

func TestLoadErrors(t *testing.T) {
	var cfg config.PoolConfig

	err := config.Load("/nonexistent/pool.yaml", &cfg)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	path := testutil.WriteConfigFile(t, "bad.yaml", "name: [unclosed")
	err = config.Load(path, &cfg)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	path = testutil.WriteConfigFile(t, "bad.json", "{not json")
	err = config.Load(path, &cfg)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/pool.yaml"

	src := config.NewPoolConfig("saved", 32)
	src.IndexedRelease = true
	require.NoError(t, config.Save(path, src))

	var loaded config.PoolConfig
	require.NoError(t, config.Load(path, &loaded))
	assert.Equal(t, *src, loaded)
}
