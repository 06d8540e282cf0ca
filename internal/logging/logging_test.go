package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWithWriter_ProductionWritesJSON(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	logger := SetupWithWriter("production", &buf)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	log.Debug().Msg("hidden")
	log.Info().Int("rows", 3).Msg("exported")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "exported", line["message"])
	assert.Equal(t, float64(3), line["rows"])
}

func TestSetupWithWriter_DevelopmentIsVerbose(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	logger := SetupWithWriter("development", &buf)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
