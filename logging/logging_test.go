package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netsim/logging"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, zerolog.InfoLevel)

	log.Debug().Msg("hidden")
	log.Info().Int("iteration", 3).Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "iteration=3")
}

func TestParseLevel(t *testing.T) {
	lvl, err := logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = logging.ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)

	_, err = logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestGet_Singleton(t *testing.T) {
	a := logging.Get()
	b := logging.Get()
	assert.Equal(t, a.GetLevel(), b.GetLevel())
}
