package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "warn", Output: &buf}).Component("ledger")

	log.Info().Msg("descartado")
	assert.Zero(t, buf.Len())

	log.Warn().Str("format", "csv").Msg("formato no soportado")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ledger", line["component"])
	assert.Equal(t, "csv", line["format"])
	assert.Equal(t, "warn", line["level"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}
