package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/mailstat/smgp/internal/errors"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Filter.Sender = "jsmith"
	cfg.Filter.Recipient = "partner@external.example"
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Model.Q)
	assert.Equal(t, 1000, cfg.Model.MaxIterations)
	assert.Equal(t, 11, cfg.Split.TrainSize)
	assert.Equal(t, 3, cfg.Split.DropTail)
	assert.Equal(t, 1e6, cfg.Input.Scale)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty sender", func(c *Config) { c.Filter.Sender = "" }},
		{"empty column", func(c *Config) { c.Input.SizeColumn = "" }},
		{"zero q", func(c *Config) { c.Model.Q = 0 }},
		{"negative q", func(c *Config) { c.Model.Q = -3 }},
		{"zero iterations", func(c *Config) { c.Model.MaxIterations = 0 }},
		{"zero scale", func(c *Config) { c.Input.Scale = 0 }},
		{"zero lengthscale", func(c *Config) { c.Model.InitialLengthscale = 0 }},
		{"zero noise", func(c *Config) { c.Model.InitialNoise = 0 }},
		{"zero train size", func(c *Config) { c.Split.TrainSize = 0 }},
		{"negative drop tail", func(c *Config) { c.Split.DropTail = -1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := validConfig()
			c.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errs.IsConfiguration(err), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smgp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
filter:
  sender: jsmith
  recipient: partner@external.example
model:
  q: 5
  max_iterations: 100
split:
  train_size: 8
  drop_tail: 2
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Model.Q)
	assert.Equal(t, 100, cfg.Model.MaxIterations)
	assert.Equal(t, 8, cfg.Split.TrainSize)
	// Untouched fields keep their defaults.
	assert.Equal(t, "date", cfg.Input.TimeColumn)
	assert.Equal(t, 1e6, cfg.Input.Scale)
}

func TestLoadRejects(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("model: [unclosed"), 0o600))
	_, err = Load(bad)
	assert.True(t, errs.IsConfiguration(err), "got %v", err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte(`
filter:
  sender: jsmith
model:
  q: -1
`), 0o600))
	_, err = Load(invalid)
	assert.True(t, errs.IsConfiguration(err), "got %v", err)
}
