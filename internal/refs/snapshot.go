package refs

import "github.com/kilupskalvis/gitrefs/internal/models"

// Snapshot is everything the reader knows about a repository at one point.
// The files are read one after another, so a repository being written to
// concurrently can yield a snapshot that never existed on disk as a whole.
type Snapshot struct {
	GitDir          string                     `json:"git_dir"`
	State           models.RepositoryState     `json:"state"`
	CurrentRevision string                     `json:"current_revision,omitempty"`
	CurrentBranch   *models.LocalBranch        `json:"current_branch,omitempty"`
	Branches        *models.BranchesCollection `json:"branches"`
}

// ReadSnapshot reads state, current revision, current branch and branches.
func (r *Reader) ReadSnapshot(remotes []*models.Remote) *Snapshot {
	revision, _ := r.ReadCurrentRevision()
	return &Snapshot{
		GitDir:          r.gitDir,
		State:           r.ReadState(),
		CurrentRevision: revision,
		CurrentBranch:   r.ReadCurrentBranch(),
		Branches:        r.ReadBranches(remotes),
	}
}
