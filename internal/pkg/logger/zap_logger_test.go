package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestIsolatedLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	l := NewIsolatedLogger(path)

	l.Info("note", "Note created", map[string]interface{}{"note_id": "n-1"})
	l.Debug("note", "dropped below info level", nil)
	_ = l.Sync()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}

	require.Len(t, lines, 1)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "Note created", lines[0]["message"])
	assert.Equal(t, "note", lines[0]["module"])
}

func TestErrorAddsErrorRef(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Error("auth", "login failed", map[string]interface{}{"error": "invalid credentials"})
	l.Warn("auth", "no details", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].ContextMap(), "error_ref")
	assert.Equal(t, "auth", entries[1].ContextMap()["module"])
}
