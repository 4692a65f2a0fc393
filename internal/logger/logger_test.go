package logger

import (
	"os"
	"path/filepath"
	"testing"

	"comic99/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevel(t *testing.T) {
	l := New(&domain.Config{LogLevel: "ERROR"}).(*DefaultLogger)
	assert.Equal(t, zerolog.ErrorLevel, l.level)

	l.SetLogLevel("trace")
	assert.Equal(t, zerolog.TraceLevel, l.level)

	l.SetLogLevel("bogus")
	assert.Equal(t, zerolog.DebugLevel, l.level)
}

func TestNew_FileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "comic99.log")

	l := New(&domain.Config{LogPath: logPath, LogLevel: "INFO", LogMaxSize: 1, LogMaxBackups: 1})
	l.Info().Str("book", "One Piece").Msg("resolved volume")
	l.Debug().Msg("hidden")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"book":"One Piece"`)
	assert.NotContains(t, string(data), "hidden")
}
