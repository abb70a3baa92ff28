package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bianoble/validate-licenses/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"verbose", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"trace", zerolog.TraceLevel},
		{"bogus", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logging.ParseLevel(tt.in), tt.in)
	}
}

func TestConsoleDebugLinesArePlain(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logging.New(&logging.Config{Level: "debug", Output: buf, NoColor: true})

	l.Debug().Msg("processing a.txt")
	l.Warn().Msg("careful")

	assert.Equal(t, "processing a.txt\nwarn: careful\n", buf.String())
}

func TestLevelFiltersDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logging.New(&logging.Config{Level: "warn", Output: buf, NoColor: true})

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestInfoLinesAreTagged(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logging.New(&logging.Config{Level: "info", Output: buf, NoColor: true})

	l.Info().Msg("ready")
	assert.Equal(t, "info: ready\n", buf.String())
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	logging.FromContext(ctx).Debug().Msg("from context")
	tl.AssertContains(t, "from context")
	assert.Equal(t, []string{"from context"}, tl.Lines())
}

func TestFromContextWithoutLoggerIsNop(t *testing.T) {
	l := logging.FromContext(context.Background())
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
