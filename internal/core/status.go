package core

import (
	"github.com/kilupskalvis/gitrefs/internal/models"
)

// Status is the checkout state shown by `gitrefs status`.
type Status struct {
	State    models.RepositoryState
	Branch   *models.LocalBranch // nil when detached or on an unborn branch
	Revision string              // "" when unknown
}

// GetStatus reads the repository state, current branch and revision.
func GetStatus(repo *Repository) *Status {
	revision, _ := repo.Reader.ReadCurrentRevision()
	return &Status{
		State:    repo.Reader.ReadState(),
		Branch:   repo.Reader.ReadCurrentBranch(),
		Revision: revision,
	}
}

// IsDetached reports whether HEAD is detached outside of a rebase.
func (s *Status) IsDetached() bool {
	return s.State == models.StateDetached
}

// NoCommits reports whether HEAD resolves to nothing, as in a fresh repository.
func (s *Status) NoCommits() bool {
	return s.Revision == "" && s.Branch == nil
}
