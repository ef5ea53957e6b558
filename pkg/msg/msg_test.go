package msg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestCatalog(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	Init(path)
}

func TestGetMessageResolvesPlaceholders(t *testing.T) {
	initTestCatalog(t, "test:\n  req: \"{0} {1} -> {2} in {3}\"\n")

	latency := 1500 * time.Millisecond
	got := GetMessage("test.req", "GET", "/api/todos", 200, latency.String())

	assert.Equal(t, "GET /api/todos -> 200 in 1.5s", got)
}

func TestGetMessageUnknownKey(t *testing.T) {
	initTestCatalog(t, "test:\n  known: \"hello\"\n")

	assert.Equal(t, "Message not found: test.missing", GetMessage("test.missing"))
}
