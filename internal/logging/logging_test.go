package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/arcade-mines/internal/config"
)

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&config.LogConfig{Level: "warn"}, &buf, false)
	require.NoError(t, err)

	log.Info("quiet")
	log.WithField("cell", "1:2").Warn("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, `cell="1:2"`)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.log")
	log, err := New(&config.LogConfig{
		Level:      "debug",
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}, io.Discard, false)
	require.NoError(t, err)

	log.WithField("params", "9:9:10").Debug("mines placed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line, _, _ := strings.Cut(string(data), "\n")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "mines placed", entry["msg"])
	assert.Equal(t, "9:9:10", entry["params"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(&config.LogConfig{Level: "chatty"}, io.Discard, false)
	assert.Error(t, err)
}
