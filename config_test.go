package probability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "probability.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigManager_LoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		env         map[string]string
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		{
			name:    "default_config",
			content: "",
			validate: func(t *testing.T, config *Config) {
				assert.Equal(t, MaxOutcomes, config.Engine.MaxOutcomes)
				assert.Equal(t, DefaultLogLevel, config.Engine.LogLevel)
				assert.True(t, config.Engine.MonitorEnabled)
				assert.Equal(t, DefaultSimulationTrials, config.Simulation.Trials)
				assert.Equal(t, int64(0), config.Simulation.Seed)
			},
		},
		{
			name: "file_values",
			content: `
engine:
  max_outcomes: 1000
  log_level: debug
simulation:
  trials: 500
  seed: 42
`,
			validate: func(t *testing.T, config *Config) {
				assert.Equal(t, 1000, config.Engine.MaxOutcomes)
				assert.Equal(t, "debug", config.Engine.LogLevel)
				assert.Equal(t, 500, config.Simulation.Trials)
				assert.Equal(t, int64(42), config.Simulation.Seed)
			},
		},
		{
			name:    "environment_variables",
			content: "engine:\n  max_outcomes: 1000\n",
			env: map[string]string{
				"PROBABILITY_ENGINE_MAX_OUTCOMES": "2000",
				"PROBABILITY_SIMULATION_SEED":     "7",
			},
			validate: func(t *testing.T, config *Config) {
				assert.Equal(t, 2000, config.Engine.MaxOutcomes)
				assert.Equal(t, int64(7), config.Simulation.Seed)
			},
		},
		{
			name:        "invalid_max_outcomes",
			content:     "engine:\n  max_outcomes: 0\n",
			expectError: true,
		},
		{
			name:        "invalid_log_level",
			content:     "engine:\n  log_level: shouting\n",
			expectError: true,
		},
		{
			name:        "invalid_trials",
			content:     "simulation:\n  trials: -1\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cm := NewConfigManager()
			cm.SetConfigFile(writeConfig(t, tt.content))

			config, err := cm.LoadConfig()
			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrConfigInvalid)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, config)
			assert.Same(t, config, cm.GetConfig())
			if tt.validate != nil {
				tt.validate(t, config)
			}
		})
	}
}

func TestConfigManager_MissingFile(t *testing.T) {
	cm := NewConfigManager()
	cm.SetConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := cm.LoadConfig()
	assert.Error(t, err)
}

func TestConfigManager_Reload(t *testing.T) {
	path := writeConfig(t, "engine:\n  max_outcomes: 10\n")
	cm := NewConfigManager()
	cm.SetConfigFile(path)

	config, err := cm.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, config.Engine.MaxOutcomes)

	require.NoError(t, os.WriteFile(path, []byte("engine:\n  max_outcomes: 20\n"), 0o600))
	config, err = cm.ReloadConfig()
	require.NoError(t, err)
	assert.Equal(t, 20, config.Engine.MaxOutcomes)

	cm.WatchConfig(func(*Config) {})
}

func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  bool
	}{
		{"valid_config", func(*Config) {}, false},
		{"missing_engine", func(c *Config) { c.Engine = nil }, true},
		{"missing_simulation", func(c *Config) { c.Simulation = nil }, true},
		{"max_outcomes_too_large", func(c *Config) { c.Engine.MaxOutcomes = MaxOutcomes + 1 }, true},
		{"negative_cache", func(c *Config) { c.Simulation.CacheSize = -1 }, true},
		{"too_many_trials", func(c *Config) { c.Simulation.Trials = MaxSimulationTrials + 1 }, true},
		{"error_level", func(c *Config) { c.Engine.LogLevel = "error" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modifyConfig(config)

			err := config.Validate()
			if tt.expectError {
				assert.ErrorIs(t, err, ErrConfigInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewConfigManagerFromConfig(t *testing.T) {
	_, err := NewConfigManagerFromConfig(nil)
	assert.ErrorIs(t, err, ErrConfigInvalid)

	bad := DefaultConfig()
	bad.Engine.MaxOutcomes = -3
	_, err = NewConfigManagerFromConfig(bad)
	assert.ErrorIs(t, err, ErrConfigInvalid)

	cm, err := NewConfigManagerFromConfig(DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, cm.GetConfig())

	assert.Equal(t, DefaultConfig(), NewDefaultConfigManager().GetConfig())
}
