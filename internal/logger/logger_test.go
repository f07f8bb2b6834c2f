package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(WARN)
	defer SetLevel(INFO)

	Info("hidden %d", 1)
	Warn("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown 2", entry["message"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("DEBUG"))
	assert.Equal(t, NONE, ParseLevel("none"))
	assert.Equal(t, INFO, ParseLevel("bogus"))
}

func TestInit_CreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ripeness.log")
	require.NoError(t, Init(path, "error"))
	defer SetLevel(INFO)

	assert.FileExists(t, path)
	assert.Equal(t, ERROR, level)
	require.NoError(t, Close())
}

func TestInit_ReleasesPreviousLogFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	defer SetLevel(INFO)

	require.NoError(t, Init(first, "error"))
	previous := logFile
	require.NotNil(t, previous)

	require.NoError(t, Init(second, "error"))
	_, err := previous.WriteString("late write")
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.Equal(t, second, logFile.Name())

	require.NoError(t, Close())
	assert.Nil(t, logFile)
	assert.NoError(t, Close(), "closing twice is a no-op")
}
