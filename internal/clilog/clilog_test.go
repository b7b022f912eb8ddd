package clilog_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sternbrocot/internal/clilog"
)

// TestConfigFromEnv checks defaults and overrides.
func TestConfigFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv(clilog.EnvLevel, "")
		t.Setenv(clilog.EnvFormat, "")
		assert.Equal(t, clilog.DefaultConfig(), clilog.ConfigFromEnv())
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv(clilog.EnvLevel, "trace")
		t.Setenv(clilog.EnvFormat, " json ")
		cfg := clilog.ConfigFromEnv()
		assert.Equal(t, "trace", cfg.Level)
		assert.Equal(t, clilog.FormatJSON, cfg.Format)
	})
}

// TestNew_JSON writes one JSON line per event and honours the level.
func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := clilog.New(&buf, clilog.Config{Level: "info", Format: "json"})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("fraction", "5/3").Msg("built")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "5/3", line["fraction"])
	assert.Equal(t, "built", line["message"])
	assert.Contains(t, line, "time")
}

// TestNew_Auto falls back to JSON when w is not a terminal.
func TestNew_Auto(t *testing.T) {
	var buf bytes.Buffer
	log, err := clilog.New(&buf, clilog.DefaultConfig())
	require.NoError(t, err)

	log.Warn().Msg("plain")
	assert.True(t, json.Valid(buf.Bytes()))
	assert.False(t, clilog.IsTerminal(&buf))
}

// TestNew_Console renders a human readable line.
func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := clilog.New(&buf, clilog.Config{Level: "debug", Format: "console"})
	require.NoError(t, err)

	log.Debug().Int("nodes", 7).Msg("store ready")
	out := buf.String()
	assert.Contains(t, out, "store ready")
	assert.Contains(t, out, "nodes")
	assert.Contains(t, out, "7")
	assert.False(t, json.Valid(buf.Bytes()))
}

// TestNew_Errors rejects unknown levels and formats.
func TestNew_Errors(t *testing.T) {
	_, err := clilog.New(os.Stderr, clilog.Config{Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = clilog.New(os.Stderr, clilog.Config{Level: "info", Format: "xml"})
	assert.ErrorIs(t, err, clilog.ErrBadFormat)
}
