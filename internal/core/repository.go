// Package core contains the operations behind gitrefs commands.
package core

import (
	"fmt"
	"log/slog"

	"github.com/kilupskalvis/gitrefs/internal/config"
	"github.com/kilupskalvis/gitrefs/internal/gitconfig"
	"github.com/kilupskalvis/gitrefs/internal/models"
	"github.com/kilupskalvis/gitrefs/internal/refs"
)

// Repository is an opened git directory together with its configured remotes.
type Repository struct {
	Reader  *refs.Reader
	Remotes []*models.Remote
}

// Open opens the git directory at gitDir. An unreadable .git/config is
// logged and treated as having no remotes.
func Open(gitDir string, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reader, err := refs.NewReader(gitDir, logger)
	if err != nil {
		return nil, err
	}

	remotes, err := gitconfig.ReadRemotes(reader.GitDir())
	if err != nil {
		logger.Warn("failed to read remotes", "git_dir", reader.GitDir(), "error", err)
		remotes = nil
	}

	return &Repository{Reader: reader, Remotes: remotes}, nil
}

// Discover finds the git directory for dir (dir itself or a parent) and opens it.
func Discover(dir string, logger *slog.Logger) (*Repository, error) {
	gitDir, err := config.FindGitDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return Open(gitDir, logger)
}

// IsConfiguredRemote reports whether name is a remote from .git/config.
func (r *Repository) IsConfiguredRemote(name string) bool {
	return models.FindRemote(r.Remotes, name) != nil
}

// Snapshot reads the full state of the repository.
func (r *Repository) Snapshot() *refs.Snapshot {
	return r.Reader.ReadSnapshot(r.Remotes)
}
