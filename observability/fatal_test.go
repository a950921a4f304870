package observability

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendFatal_AppendsOneLinePerCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	for i := 0; i < 2; i++ {
		require.NoError(t, AppendFatal(path, "base map image not found", errors.New("blank.png: missing")))
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=ERROR")
	assert.Contains(t, lines[0], "blank.png")
}

func TestAppendFatal_BadPath(t *testing.T) {
	err := AppendFatal(filepath.Join(t.TempDir(), "missing", "log.txt"), "x", nil)
	assert.Error(t, err)
}

func TestWriteFatal_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	WriteFatal(&buf, "boom", errors.New("cause"))
	assert.Contains(t, buf.String(), "msg=boom")
	assert.Contains(t, buf.String(), "error=cause")
}
