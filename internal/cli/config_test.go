package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TJ_FILE", "")
	t.Setenv("TJ_NO_COLOR", "")
	t.Setenv("TJ_VERBOSE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.File)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("TJ_FILE", "plans/rollout.json")
	t.Setenv("TJ_NO_COLOR", "true")
	t.Setenv("TJ_VERBOSE", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "plans/rollout.json", cfg.File)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Setenv("TJ_VERBOSE", "banana")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing environment")
}
