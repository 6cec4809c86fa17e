package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Player", cfg.PlayerName)
	assert.Equal(t, "Computer", cfg.ComputerName)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, OutputText, cfg.Output)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.AutoPlay)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.applyEnv(env(map[string]string{
		"WAR_PLAYER_NAME":   "Teo",
		"WAR_COMPUTER_NAME": "HAL",
		"WAR_SEED":          "42",
		"WAR_MAX_ROUNDS":    "100",
		"WAR_AUTO_PLAY":     "true",
		"WAR_OUTPUT":        "JSON",
		"WAR_NO_COLOR":      "1",
		"WAR_LOG_FILE":      "war.log",
	}))
	require.NoError(t, err)

	assert.Equal(t, "Teo", cfg.PlayerName)
	assert.Equal(t, "HAL", cfg.ComputerName)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 100, cfg.MaxRounds)
	assert.True(t, cfg.AutoPlay)
	assert.True(t, cfg.IsJSON())
	assert.False(t, cfg.Color)
	assert.Equal(t, "war.log", cfg.LogFile)
}

func TestApplyEnv_Booleans(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.applyEnv(env(map[string]string{
		"WAR_NO_COLOR": "false",
		"WAR_VERBOSE":  "true",
	})))
	assert.True(t, cfg.Color)
	assert.True(t, cfg.Verbose)

	cfg = DefaultConfig()
	require.NoError(t, cfg.applyEnv(env(map[string]string{"WAR_NO_COLOR": "true"})))
	assert.False(t, cfg.Color)
}

func TestRoundLimit(t *testing.T) {
	tests := []struct {
		name      string
		autoPlay  bool
		maxRounds int
		expected  int
	}{
		{"Interactive unlimited", false, 0, 0},
		{"Interactive capped", false, 50, 50},
		{"Auto unlimited", true, 0, AutoPlayRoundLimit},
		{"Auto capped", true, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.AutoPlay = tt.autoPlay
			cfg.MaxRounds = tt.maxRounds
			assert.Equal(t, tt.expected, cfg.RoundLimit())
		})
	}
}

func TestLoad_AutoPlayIsCapped(t *testing.T) {
	cfg, err := Load([]string{"-auto"})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxRounds)
	assert.Equal(t, AutoPlayRoundLimit, cfg.RoundLimit())
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"Seed", "WAR_SEED", "abc"},
		{"Rounds", "WAR_MAX_ROUNDS", "many"},
		{"AutoPlay", "WAR_AUTO_PLAY", "sometimes"},
		{"NoColor", "WAR_NO_COLOR", "maybe"},
		{"Verbose", "WAR_VERBOSE", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultConfig().applyEnv(env(map[string]string{tt.key: tt.val}))
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestParseFlags_OverrideEnv(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.applyEnv(env(map[string]string{"WAR_SEED": "1"})))

	err := cfg.parseFlags([]string{"-seed", "7", "-name", "Ana", "-auto", "-max-rounds", "20", "-color=false"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "Ana", cfg.PlayerName)
	assert.True(t, cfg.AutoPlay)
	assert.Equal(t, 20, cfg.MaxRounds)
	assert.False(t, cfg.Color)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "xml"
	assert.ErrorContains(t, cfg.Validate(), "xml")

	cfg = DefaultConfig()
	cfg.MaxRounds = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.PlayerName = "  "
	assert.Error(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Setenv("WAR_SEED", "5")
	t.Setenv("WAR_OUTPUT", "json")

	cfg, err := Load([]string{"-max-rounds", "3"})
	require.NoError(t, err)

	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, 3, cfg.MaxRounds)
	assert.True(t, cfg.IsJSON())
}

func TestLoad_BadFlag(t *testing.T) {
	_, err := Load([]string{"-output", "yaml"})
	assert.Error(t, err)

	_, err = Load([]string{"-unknown"})
	assert.Error(t, err)
}
