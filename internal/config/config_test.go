package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GITREFS_LOG_LEVEL", "")
	t.Setenv("GITREFS_LOG_FORMAT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 8, cfg.ScanWorkers)
	assert.Equal(t, "", cfg.Path())
}

func TestLoad_File(t *testing.T) {
	t.Setenv("GITREFS_LOG_LEVEL", "")
	t.Setenv("GITREFS_LOG_FORMAT", "")

	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"
log_format = "json"
no_color = true
scan_workers = 2
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 2, cfg.ScanWorkers)
	assert.Equal(t, path, cfg.Path())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GITREFS_LOG_LEVEL", "error")
	t.Setenv("GITREFS_NO_COLOR", "true")

	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "debug"`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("GITREFS_LOG_LEVEL", "")
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`log_level = `), 0644))
	_, err := Load(bad)
	assert.Error(t, err)

	level := filepath.Join(dir, "level.toml")
	require.NoError(t, os.WriteFile(level, []byte(`log_level = "loud"`), 0644))
	_, err = Load(level)
	assert.ErrorContains(t, err, "invalid log_level")

	workers := filepath.Join(dir, "workers.toml")
	require.NoError(t, os.WriteFile(workers, []byte(`scan_workers = 0`), 0644))
	_, err = Load(workers)
	assert.ErrorContains(t, err, "invalid scan_workers")
}

func TestFindGitDir_WalksUp(t *testing.T) {
	root := t.TempDir()
	gitDir := filepath.Join(root, GitDir)
	require.NoError(t, os.MkdirAll(gitDir, 0755))
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := FindGitDir(nested)
	require.NoError(t, err)
	assert.Equal(t, gitDir, found)
}

func TestFindGitDir_GitFile(t *testing.T) {
	root := t.TempDir()
	realGitDir := filepath.Join(root, "main", ".git", "worktrees", "wt")
	require.NoError(t, os.MkdirAll(realGitDir, 0755))

	worktree := filepath.Join(root, "wt")
	require.NoError(t, os.MkdirAll(worktree, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(worktree, GitDir),
		[]byte("gitdir: ../main/.git/worktrees/wt\n"), 0644))

	found, err := FindGitDir(worktree)
	require.NoError(t, err)
	assert.Equal(t, realGitDir, found)

	absWorktree := filepath.Join(root, "abs")
	require.NoError(t, os.MkdirAll(absWorktree, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(absWorktree, GitDir),
		[]byte("gitdir: "+realGitDir+"\n"), 0644))

	found, err = FindGitDir(absWorktree)
	require.NoError(t, err)
	assert.Equal(t, realGitDir, found)
}

func TestFindGitDir_InvalidGitFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, GitDir), []byte("nonsense\n"), 0644))

	_, err := FindGitDir(root)
	assert.ErrorContains(t, err, "invalid gitfile format")
}
