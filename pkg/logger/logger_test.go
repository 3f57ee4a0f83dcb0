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
	"go.uber.org/zap"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)
	log.Debug("hidden")
	log.Info("tap", zap.String("id", "n-1"))
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "tap", rec["msg"])
	assert.Equal(t, "n-1", rec["id"])
	assert.Contains(t, rec, "timestamp")
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, true)
	log.Debug("shown")
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func TestNewWithoutPathIsNop(t *testing.T) {
	log, done, err := New(Options{})
	require.NoError(t, err)
	defer done()
	log.Info("dropped")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notepad.log")
	log, done, err := New(Options{Path: path})
	require.NoError(t, err)
	log.Info("hello")
	done()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestNewBadPath(t *testing.T) {
	_, _, err := New(Options{Path: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
