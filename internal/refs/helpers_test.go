package refs

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	hashA = "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
	hash1 = "1111111111111111111111111111111111111111"
	hash2 = "2222222222222222222222222222222222222222"
	hash3 = "3333333333333333333333333333333333333333"
)

// setupGitDir creates an empty .git directory with the given HEAD content.
func setupGitDir(t *testing.T, head string) string {
	t.Helper()
	gitDir := filepath.Join(t.TempDir(), ".git")
	require.NoError(t, os.MkdirAll(gitDir, 0755))
	writeFile(t, gitDir, "HEAD", head)
	return gitDir
}

// writeFile writes content to gitDir/rel, creating parent directories.
func writeFile(t *testing.T, gitDir, rel, content string) {
	t.Helper()
	path := filepath.Join(gitDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func mkdir(t *testing.T, gitDir, rel string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, filepath.FromSlash(rel)), 0755))
}

// newTestReader opens gitDir with a logger writing text records to the returned buffer.
func newTestReader(t *testing.T, gitDir string) (*Reader, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r, err := NewReader(gitDir, logger)
	require.NoError(t, err)
	return r, &buf
}
